package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString("   "))
	got := OptionalString(" build APIs ")
	if assert.NotNil(t, got) {
		assert.Equal(t, "build APIs", *got)
	}
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("-5m", time.Minute))
}
