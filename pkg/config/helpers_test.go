package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validates/pkg/config"
)

var validationEnv = []string{
	"APP_ENV",
	"VALIDATION_SERVICE_NAME",
	"VALIDATION_LOG_LEVEL",
	"VALIDATION_LOG_FORMAT",
	"VALIDATION_MESSAGES_FILE",
	"VALIDATION_LOG_MISSING_MESSAGES",
}

// cleanEnv unsets the runner variables for the duration of the test and
// clears the configuration cache on both ends.
func cleanEnv(t *testing.T) {
	t.Helper()
	for _, key := range validationEnv {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	config.Reset()
	t.Cleanup(config.Reset)
}
