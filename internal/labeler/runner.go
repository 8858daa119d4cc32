package labeler

import (
	"context"
	"time"

	"github.com/douhashi/dday-labeler/internal/countdown"
	"github.com/douhashi/dday-labeler/internal/github"
	"github.com/douhashi/dday-labeler/internal/holiday"
	"github.com/douhashi/dday-labeler/internal/logger"
	"github.com/google/uuid"
)

// ClientFactory は認証済みのGitHubクライアントを作成する。
// 休日には呼ばれない。
type ClientFactory func(ctx context.Context) (github.GitHubClient, error)

// Stage は実行のどの段階で失敗したかを表す
type Stage string

const (
	StageConnect Stage = "connect"
	StageList    Stage = "list"
	StageUpdate  Stage = "update"
)

// RunError は実行全体を失敗させたエラー
type RunError struct {
	Stage Stage
	Err   error
}

// Error はもとのエラーメッセージをそのまま返す
func (e *RunError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the original error
func (e *RunError) Unwrap() error {
	return e.Err
}

// Result は1回の実行結果
type Result struct {
	RunID   string
	Today   string
	Skipped bool
	Results []bool
	Updated int
}

// Runner は1回分のラベル更新を実行する
type Runner struct {
	calendar *holiday.Calendar
	connect  ClientFactory
	logger   logger.Logger
	now      func() time.Time
	newRunID func() string
}

// Option はRunnerの設定オプション
type Option func(*Runner)

// WithClock は現在時刻の取得方法を設定する
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

// WithRunIDGenerator は実行IDの生成方法を設定する
func WithRunIDGenerator(gen func() string) Option {
	return func(r *Runner) {
		r.newRunID = gen
	}
}

// NewRunner は新しいRunnerを作成する
func NewRunner(calendar *holiday.Calendar, connect ClientFactory, log logger.Logger, opts ...Option) *Runner {
	r := &Runner{
		calendar: calendar,
		connect:  connect,
		logger:   log,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run は休日判定、PR一覧の取得、ラベルの付け替えを順に行う。
// 休日の場合は何もせずに正常終了する。
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	now := r.now()
	result := &Result{
		RunID: r.newRunID(),
		Today: r.calendar.Today(now),
	}
	log := r.logger.WithFields("run_id", result.RunID)

	if r.calendar.IsHoliday(now) {
		log.Info("Today is a holiday, skipping", "today", result.Today)
		result.Skipped = true
		return result, nil
	}

	client, err := r.connect(ctx)
	if err != nil {
		return result, r.fail(log, StageConnect, err)
	}

	prs, err := client.ListOpenPullRequests(ctx)
	if err != nil {
		return result, r.fail(log, StageList, err)
	}

	changes := countdown.ExtractChanges(prs)
	log.Debug("Extracted label changes",
		"pull_requests", len(prs),
		"changes", len(changes),
	)

	updater := countdown.NewUpdater(client, log)
	results, err := updater.UpdateAll(ctx, changes)
	result.Results = results
	result.Updated = countdown.CountUpdated(results)
	if err != nil {
		return result, r.fail(log, StageUpdate, err)
	}

	log.Info("Successfully updated labels for all PRs", "updated", result.Updated)

	return result, nil
}

// fail はエラーをログに記録してRunErrorとして返す
func (r *Runner) fail(log logger.Logger, stage Stage, err error) error {
	log.Error("Run failed", "stage", string(stage), "error", err.Error())
	return &RunError{Stage: stage, Err: err}
}
