package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("EMISSION_TEST_STRING", "emission")
	t.Setenv("EMISSION_TEST_INT", " 42 ")
	t.Setenv("EMISSION_TEST_BOOL", "true")
	t.Setenv("EMISSION_TEST_BAD_INT", "forty-two")
	t.Setenv("EMISSION_TEST_BAD_BOOL", "maybe")

	assert.Equal(t, "emission", GetEnvString("EMISSION_TEST_STRING", "default"))
	assert.Equal(t, "default", GetEnvString("EMISSION_TEST_UNSET", "default"))

	assert.Equal(t, 42, GetEnvInt("EMISSION_TEST_INT", 7))
	assert.Equal(t, 7, GetEnvInt("EMISSION_TEST_UNSET", 7))
	assert.Equal(t, 7, GetEnvInt("EMISSION_TEST_BAD_INT", 7))

	assert.True(t, GetEnvBool("EMISSION_TEST_BOOL", false))
	assert.True(t, GetEnvBool("EMISSION_TEST_BAD_BOOL", true))

	invalid := InvalidEnvKeys()
	assert.Contains(t, invalid, "EMISSION_TEST_BAD_INT")
	assert.Contains(t, invalid, "EMISSION_TEST_BAD_BOOL")
	assert.NotContains(t, invalid, "EMISSION_TEST_INT")
	assert.NotContains(t, invalid, "EMISSION_TEST_UNSET")
}
