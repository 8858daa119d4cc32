// Package helpers provides general test helper functions and utilities.
//
// # Available Helpers
//
//   - ObservableLogger: a logger.Logger that records entries for assertions
//   - UnsetEnv / GitHubEnvKeys: isolate tests from the GitHub Actions environment
//
// # Example
//
//	func TestLoad(t *testing.T) {
//	    helpers.UnsetEnv(t, helpers.GitHubEnvKeys...)
//	    log, observed := helpers.NewObservableLogger(zapcore.DebugLevel)
//	    // ...
//	}
package helpers
