package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvString(t *testing.T) {
	t.Run("unset uses default silently", func(t *testing.T) {
		r := LoadEnvString("SPEED_TEST_SCHEDULE", "0 8 * * 1-5", ValidateCronSchedule)
		assert.Equal(t, LoadResult[string]{Value: "0 8 * * 1-5"}, r)
	})

	t.Run("valid value", func(t *testing.T) {
		t.Setenv("SPEED_TEST_SCHEDULE", "*/15 * * * *")
		r := LoadEnvString("SPEED_TEST_SCHEDULE", "0 8 * * 1-5", ValidateCronSchedule)
		assert.Equal(t, "*/15 * * * *", r.Value)
		assert.False(t, r.FallbackApplied)
	})

	t.Run("invalid value falls back", func(t *testing.T) {
		t.Setenv("SPEED_TEST_SCHEDULE", "every morning")
		r := LoadEnvString("SPEED_TEST_SCHEDULE", "0 8 * * 1-5", ValidateCronSchedule)
		assert.Equal(t, "0 8 * * 1-5", r.Value)
		assert.True(t, r.FallbackApplied)
		assert.Contains(t, r.Warning, "Invalid SPEED_TEST_SCHEDULE='every morning'")
		assert.Contains(t, r.Warning, "falling back to default '0 8 * * 1-5'")
	})
}

func TestLoadEnvInt(t *testing.T) {
	inRange := func(v int) error { return ValidateIntRange(v, 1024, 65535) }

	t.Setenv("SPEED_TEST_PORT", "9191")
	assert.Equal(t, 9191, LoadEnvInt("SPEED_TEST_PORT", 9091, inRange).Value)

	t.Setenv("SPEED_TEST_PORT", "80")
	r := LoadEnvInt("SPEED_TEST_PORT", 9091, inRange)
	assert.Equal(t, 9091, r.Value)
	assert.Contains(t, r.Warning, "below minimum")

	t.Setenv("SPEED_TEST_PORT", "nine")
	r = LoadEnvInt("SPEED_TEST_PORT", 9091, inRange)
	assert.True(t, r.FallbackApplied)
	assert.Contains(t, r.Warning, "invalid integer format")
}

func TestLoadEnvDuration(t *testing.T) {
	t.Setenv("SPEED_TEST_TIMEOUT", "90s")
	assert.Equal(t, 90*time.Second, LoadEnvDuration("SPEED_TEST_TIMEOUT", time.Minute, ValidatePositiveDuration).Value)

	t.Setenv("SPEED_TEST_TIMEOUT", "-1s")
	r := LoadEnvDuration("SPEED_TEST_TIMEOUT", time.Minute, ValidatePositiveDuration)
	assert.Equal(t, time.Minute, r.Value)
	assert.True(t, r.FallbackApplied)
}

func TestLoadEnvBool(t *testing.T) {
	t.Setenv("SPEED_TEST_FLAG", "true")
	assert.True(t, LoadEnvBool("SPEED_TEST_FLAG", false).Value)

	t.Setenv("SPEED_TEST_FLAG", "yes")
	r := LoadEnvBool("SPEED_TEST_FLAG", false)
	assert.False(t, r.Value)
	assert.True(t, r.FallbackApplied)
}
