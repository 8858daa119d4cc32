package helpers

import (
	"os"
	"testing"
)

// GitHubEnvKeys are the environment variables that can change how config is loaded.
// GitHub Actions sets several of these on every job.
var GitHubEnvKeys = []string{
	"GITHUB_TOKEN", "INPUT_TOKEN", "GITHUB_REPOSITORY", "GITHUB_API_URL",
	"DDAY_GITHUB_TOKEN", "DDAY_GITHUB_REPOSITORY", "DDAY_GITHUB_API_URL",
	"DDAY_SCHEDULE_UTC_OFFSET", "DDAY_SCHEDULE_HOLIDAYS",
}

// UnsetEnv removes environment variables for the duration of the test.
// The original values are restored by t.Setenv's cleanup.
func UnsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset env var %s: %v", key, err)
		}
	}
}
