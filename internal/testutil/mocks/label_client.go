package mocks

import (
	"context"

	"github.com/douhashi/dday-labeler/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockGitHubClient is a mock implementation of the pull request / label client
type MockGitHubClient struct {
	mock.Mock
}

// NewMockGitHubClient creates a new instance of MockGitHubClient
func NewMockGitHubClient() *MockGitHubClient {
	return &MockGitHubClient{}
}

// WithDefaultBehavior sets up common default behaviors for the mock
func (m *MockGitHubClient) WithDefaultBehavior() *MockGitHubClient {
	// ラベル操作のデフォルト動作（何もしない成功）
	m.On("RemoveLabel", mock.Anything, mock.Anything, mock.Anything).Maybe().Return(nil)
	m.On("AddLabels", mock.Anything, mock.Anything, mock.Anything).Maybe().Return(nil)

	return m
}

// ListOpenPullRequests mocks the ListOpenPullRequests method
func (m *MockGitHubClient) ListOpenPullRequests(ctx context.Context) ([]types.PullRequestSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.PullRequestSummary), args.Error(1)
}

// RemoveLabel mocks the RemoveLabel method
func (m *MockGitHubClient) RemoveLabel(ctx context.Context, number int, label string) error {
	args := m.Called(ctx, number, label)
	return args.Error(0)
}

// AddLabels mocks the AddLabels method
func (m *MockGitHubClient) AddLabels(ctx context.Context, number int, labels []string) error {
	args := m.Called(ctx, number, labels)
	return args.Error(0)
}
