// Package testutil provides common test utilities, mocks, and builders for testing dday-labeler components.
//
// This package is organized into the following sub-packages:
//
//   - mocks: Common mock implementations for interfaces used throughout the codebase
//   - builders: Test data builders using the builder pattern for creating test fixtures
//   - helpers: Observable logger for asserting log output
package testutil
