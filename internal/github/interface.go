package github

import (
	"context"

	"github.com/douhashi/dday-labeler/internal/types"
)

// GitHubClient はGitHub APIクライアントのインターフェース
type GitHubClient interface {
	ListOpenPullRequests(ctx context.Context) ([]types.PullRequestSummary, error)
	RemoveLabel(ctx context.Context, number int, label string) error
	AddLabels(ctx context.Context, number int, labels []string) error
}

var _ GitHubClient = (*Client)(nil)
