// Package mocks provides common mock implementations for interfaces used throughout the dday-labeler codebase.
//
// These mocks are built using testify/mock.
//
// # Example
//
//	func TestSomething(t *testing.T) {
//	    mockGH := NewMockGitHubClient()
//	    mockGH.On("RemoveLabel", mock.Anything, 1, "D-3").Return(nil)
//	    mockGH.On("AddLabels", mock.Anything, 1, []string{"D-2"}).Return(nil)
//	    // ...
//	}
package mocks
