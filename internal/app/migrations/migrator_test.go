package migrations

import (
	"context"
	"errors"
	"io/fs"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockMigrator(t *testing.T) (*Migrator, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewMigrator(mock, zerolog.Nop()), mock
}

func TestMigrateAppliesPendingFilesInOrder(t *testing.T) {
	m, mock := newMockMigrator(t)
	fsys := fstest.MapFS{
		"002_more.sql": {Data: []byte("CREATE TABLE b (id INT);")},
		"001_init.sql": {Data: []byte("CREATE TABLE a (id INT);")},
		"README.md":    {Data: []byte("ignored")},
	}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(pgxmock.NewResult("CREATE", 0))

	mock.ExpectQuery("SELECT EXISTS").WithArgs("001").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectQuery("SELECT EXISTS").WithArgs("002").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE b (id INT);")).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec("INSERT INTO schema_migrations").WithArgs("002", pgxmock.AnyArg()).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	require.NoError(t, m.Migrate(context.Background(), fsys))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateStopsOnFailure(t *testing.T) {
	m, mock := newMockMigrator(t)
	fsys := fstest.MapFS{"001_init.sql": {Data: []byte("BROKEN")}}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery("SELECT EXISTS").WithArgs("001").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("BROKEN").WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	err := m.Migrate(context.Background(), fsys)
	assert.ErrorContains(t, err, "001_init.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmbeddedSchemaDeclaresIntegrityRules(t *testing.T) {
	content, err := fs.ReadFile(Embedded(), "001_init.sql")
	require.NoError(t, err)
	schema := string(content)

	rules := []string{
		`CONSTRAINT accounts_email_key UNIQUE \(email\)`,
		`CONSTRAINT student_profiles_account_id_key UNIQUE \(account_id\)`,
		`CONSTRAINT company_profiles_account_id_key UNIQUE \(account_id\)`,
		`CONSTRAINT applications_student_id_drive_id_key UNIQUE \(student_id, drive_id\)`,
		`REFERENCES accounts \(id\) ON DELETE CASCADE`,
		`REFERENCES company_profiles \(company_id\) ON DELETE CASCADE`,
		`REFERENCES drives \(drive_id\) ON DELETE CASCADE`,
		`REFERENCES student_profiles \(student_id\) ON DELETE RESTRICT`,
		`approval_status VARCHAR\(20\)\s+NOT NULL DEFAULT 'Pending'`,
		`is_blacklisted\s+BOOLEAN\s+NOT NULL DEFAULT FALSE`,
		`drive_status\s+VARCHAR\(20\)\s+NOT NULL DEFAULT 'Pending'`,
		`status\s+VARCHAR\(20\) NOT NULL DEFAULT 'Applied'`,
		`cgpa >= 0 AND cgpa <= 10`,
		`min_cgpa >= 0 AND min_cgpa <= 10`,
	}
	for _, rule := range rules {
		assert.Regexp(t, regexp.MustCompile(rule), schema)
	}
}
