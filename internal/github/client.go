package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/douhashi/dday-labeler/internal/logger"
	"github.com/douhashi/dday-labeler/internal/types"
	"github.com/google/go-github/v50/github"
	"golang.org/x/oauth2"
)

// Client はGitHub APIクライアントのラッパー。
// 1つのリポジトリのプルリクエストとラベルを操作する。
type Client struct {
	github *github.Client
	owner  string
	repo   string
	logger logger.Logger
}

type clientOptions struct {
	baseURL string
	logger  logger.Logger
	base    http.RoundTripper
}

// Option はクライアントの設定オプション
type Option func(*clientOptions)

// WithBaseURL はAPIのベースURLを設定する（GitHub Enterpriseやテスト用）
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithLogger はロガーを設定する
func WithLogger(l logger.Logger) Option {
	return func(o *clientOptions) {
		o.logger = l
	}
}

// WithTransport はHTTPの下位トランスポートを設定する
func WithTransport(rt http.RoundTripper) Option {
	return func(o *clientOptions) {
		o.base = rt
	}
}

// NewClient は新しいGitHub APIクライアントを作成する。
// repositoryは owner/repo 形式で指定する。
func NewClient(token, repository string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("GitHub token is required")
	}

	owner, repo, err := parseRepository(repository)
	if err != nil {
		return nil, err
	}

	o := &clientOptions{
		logger: logger.NewNop(),
		base:   http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(o)
	}

	// oauth2がAuthorizationヘッダーを付与した後のリクエストをログ出力する
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base: &loggingRoundTripper{
				base:   o.base,
				logger: o.logger,
			},
		},
	}

	client := github.NewClient(httpClient)
	if o.baseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(o.baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid base URL %q: %w", o.baseURL, err)
		}
		client.BaseURL = baseURL
	}

	return &Client{
		github: client,
		owner:  owner,
		repo:   repo,
		logger: o.logger,
	}, nil
}

// Repository は操作対象の owner/repo を返す
func (c *Client) Repository() string {
	return c.owner + "/" + c.repo
}

// ListOpenPullRequests はオープンなプルリクエストをすべて取得する
func (c *Client) ListOpenPullRequests(ctx context.Context) ([]types.PullRequestSummary, error) {
	opts := &github.PullRequestListOptions{
		State: "open",
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}

	var summaries []types.PullRequestSummary
	for {
		prs, resp, err := c.github.PullRequests.List(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list pull requests: %w", ClassifyError(err))
		}

		for _, pr := range prs {
			summaries = append(summaries, toSummary(pr))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	c.logger.Debug("Fetched open pull requests",
		"repository", c.Repository(),
		"count", len(summaries),
	)

	return summaries, nil
}

// RemoveLabel はプルリクエストからラベルを削除する。
// ラベルが既に付いていない場合（404）はエラーとしない。
func (c *Client) RemoveLabel(ctx context.Context, number int, label string) error {
	_, err := c.github.Issues.RemoveLabelForIssue(ctx, c.owner, c.repo, number, label)
	if err != nil {
		classified := ClassifyError(err)
		if IsNotFoundError(classified) {
			c.logger.Debug("Label already absent",
				"pr_number", number,
				"label", label,
			)
			return nil
		}
		return classified
	}

	return nil
}

// AddLabels はプルリクエストにラベルを追加する
func (c *Client) AddLabels(ctx context.Context, number int, labels []string) error {
	_, _, err := c.github.Issues.AddLabelsToIssue(ctx, c.owner, c.repo, number, labels)
	if err != nil {
		return ClassifyError(err)
	}

	return nil
}

// toSummary はgo-githubのプルリクエストを必要な情報だけに変換する
func toSummary(pr *github.PullRequest) types.PullRequestSummary {
	labels := make([]string, 0, len(pr.Labels))
	for _, label := range pr.Labels {
		labels = append(labels, label.GetName())
	}

	return types.PullRequestSummary{
		Number: pr.GetNumber(),
		Labels: labels,
	}
}

// parseRepository は owner/repo 形式の文字列を分割する
func parseRepository(repository string) (string, string, error) {
	parts := strings.Split(repository, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q: must be owner/repo", repository)
	}
	return parts[0], parts[1], nil
}
