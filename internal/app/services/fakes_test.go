package services

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	appAuth "github.com/yigit/placement/internal/app/auth"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

var errStoreDown = errors.New("connection refused")

var testLogger = zerolog.New(io.Discard)

var testHasher = &auth.BcryptHasher{Cost: bcrypt.MinCost}

// fakeUsers is an in-memory AccountStore, ProfileLister and appAuth.ProfileStore
type fakeUsers struct {
	mu          sync.Mutex
	nextID      int64
	accounts    map[string]*models.Account
	students    map[int64]*models.StudentProfile
	companies   map[int64]*models.CompanyProfile
	lastLogins  map[int64]time.Time
	registerErr error
	existsErr   error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		accounts:   map[string]*models.Account{},
		students:   map[int64]*models.StudentProfile{},
		companies:  map[int64]*models.CompanyProfile{},
		lastLogins: map[int64]time.Time{},
	}
}

func (f *fakeUsers) addAccount(email, password string, role models.RoleType) *models.Account {
	f.mu.Lock()
	defer f.mu.Unlock()
	hash, _ := testHasher.Hash(password)
	f.nextID++
	a := &models.Account{ID: f.nextID, Email: email, Password: hash, Role: role}
	f.accounts[email] = a
	return a
}

func (f *fakeUsers) addStudent(accountID int64, cgpa float64) *models.StudentProfile {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	s := &models.StudentProfile{ID: f.nextID, AccountID: accountID, FullName: "Student", CGPA: cgpa, Branch: "CSE"}
	f.students[accountID] = s
	return s
}

func (f *fakeUsers) addCompany(accountID int64) *models.CompanyProfile {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	c := &models.CompanyProfile{ID: f.nextID, AccountID: accountID, CompanyName: "Acme", ApprovalStatus: models.ApprovalPending}
	f.companies[accountID] = c
	return c
}

func (f *fakeUsers) GetAccountByEmail(_ context.Context, email string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.accounts[email]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUsers) EmailExists(_ context.Context, email string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.accounts[email]
	return ok, nil
}

func (f *fakeUsers) UpdateLastLogin(_ context.Context, accountID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLogins[accountID] = time.Now()
	return nil
}

func (f *fakeUsers) register(account *models.Account) error {
	if f.registerErr != nil {
		return f.registerErr
	}
	if _, ok := f.accounts[account.Email]; ok {
		return apperrors.ErrEmailAlreadyExists
	}
	f.nextID++
	account.ID = f.nextID
	f.accounts[account.Email] = account
	return nil
}

func (f *fakeUsers) RegisterStudent(_ context.Context, account *models.Account, student *models.StudentProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.register(account); err != nil {
		return err
	}
	f.nextID++
	student.ID = f.nextID
	student.AccountID = account.ID
	student.Account = account
	f.students[account.ID] = student
	return nil
}

func (f *fakeUsers) RegisterCompany(_ context.Context, account *models.Account, company *models.CompanyProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.register(account); err != nil {
		return err
	}
	f.nextID++
	company.ID = f.nextID
	company.AccountID = account.ID
	company.Account = account
	f.companies[account.ID] = company
	return nil
}

func (f *fakeUsers) GetStudentByAccountID(_ context.Context, accountID int64) (*models.StudentProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.students[accountID]; ok {
		return s, nil
	}
	return nil, apperrors.ErrProfileNotFound
}

func (f *fakeUsers) GetCompanyByAccountID(_ context.Context, accountID int64) (*models.CompanyProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.companies[accountID]; ok {
		return c, nil
	}
	return nil, apperrors.ErrProfileNotFound
}

func (f *fakeUsers) ListStudents(context.Context) ([]*models.StudentProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.StudentProfile, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUsers) ListCompanies(context.Context) ([]*models.CompanyProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.CompanyProfile, 0, len(f.companies))
	for _, c := range f.companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// fakeDrives is an in-memory DriveStore
type fakeDrives struct {
	mu        sync.Mutex
	nextID    int64
	drives    []*models.Drive
	createErr error
}

func (f *fakeDrives) Create(_ context.Context, drive *models.Drive) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	drive.ID = f.nextID
	drive.CreatedAt = time.Now()
	f.drives = append(f.drives, drive)
	return nil
}

func (f *fakeDrives) GetByID(_ context.Context, driveID int64) (*models.Drive, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.drives {
		if d.ID == driveID {
			return d, nil
		}
	}
	return nil, apperrors.ErrDriveNotFound
}

func (f *fakeDrives) ListAll(context.Context) ([]*models.Drive, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*models.Drive(nil), f.drives...), nil
}

func (f *fakeDrives) ListByCompany(_ context.Context, companyID int64) ([]*models.Drive, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Drive
	for _, d := range f.drives {
		if d.CompanyID == companyID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDrives) add(companyID int64, minCGPA float64) *models.Drive {
	d := &models.Drive{CompanyID: companyID, JobTitle: "Engineer", MinCGPA: minCGPA, Deadline: time.Now().Add(24 * time.Hour), Status: models.DriveStatusPending}
	_ = f.Create(context.Background(), d)
	return d
}

type applicationKey struct{ student, drive int64 }

// fakeApplications is an in-memory ApplicationStore that enforces the
// (student, drive) uniqueness the database constraint provides
type fakeApplications struct {
	mu        sync.Mutex
	nextID    int64
	apps      []*models.Application
	index     map[applicationKey]bool
	existsErr error
	createErr error
	students  map[int64]*models.StudentProfile
}

func newFakeApplications() *fakeApplications {
	return &fakeApplications{index: map[applicationKey]bool{}, students: map[int64]*models.StudentProfile{}}
}

func (f *fakeApplications) Create(_ context.Context, app *models.Application) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := applicationKey{app.StudentID, app.DriveID}
	if f.index[key] {
		return apperrors.ErrAlreadyApplied
	}
	f.index[key] = true
	f.nextID++
	app.ID = f.nextID
	app.AppliedAt = time.Now()
	app.Student = f.students[app.StudentID]
	f.apps = append(f.apps, app)
	return nil
}

func (f *fakeApplications) Exists(_ context.Context, studentID, driveID int64) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.index[applicationKey{studentID, driveID}], nil
}

func (f *fakeApplications) ListDriveIDsByStudent(_ context.Context, studentID int64) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []int64
	for _, a := range f.apps {
		if a.StudentID == studentID {
			ids = append(ids, a.DriveID)
		}
	}
	return ids, nil
}

func (f *fakeApplications) ListByDrive(_ context.Context, driveID int64) ([]*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Application
	for _, a := range f.apps {
		if a.DriveID == driveID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fixture struct {
	users        *fakeUsers
	drives       *fakeDrives
	applications *fakeApplications
	authz        *appAuth.AuthorizationService
}

func newFixture() *fixture {
	users := newFakeUsers()
	drives := &fakeDrives{}
	return &fixture{
		users:        users,
		drives:       drives,
		applications: newFakeApplications(),
		authz:        appAuth.NewAuthorizationService(users, drives),
	}
}

func (f *fixture) student(cgpa float64) (*auth.Session, *models.StudentProfile) {
	a := f.users.addAccount("student@example.com", "secret1", models.RoleStudent)
	s := f.users.addStudent(a.ID, cgpa)
	f.applications.students[s.ID] = s
	return &auth.Session{AccountID: a.ID, Role: models.RoleStudent}, s
}

func (f *fixture) company(email string) (*auth.Session, *models.CompanyProfile) {
	a := f.users.addAccount(email, "secret1", models.RoleCompany)
	c := f.users.addCompany(a.ID)
	return &auth.Session{AccountID: a.ID, Role: models.RoleCompany}, c
}
