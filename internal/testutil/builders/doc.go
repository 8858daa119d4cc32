// Package builders provides test data builders using the builder pattern for creating test fixtures.
//
// # Available Builders
//
//   - PullRequestBuilder: Creates types.PullRequestSummary instances
//   - ConfigBuilder: Creates config.Config instances
//
// # Example
//
//	func TestExtract(t *testing.T) {
//	    pr := NewPullRequestBuilder().
//	        WithNumber(123).
//	        WithLabels("D-3", "enhancement").
//	        Build()
//	    // ...
//	}
package builders
