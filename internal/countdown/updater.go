package countdown

import (
	"context"
	"fmt"

	"github.com/douhashi/dday-labeler/internal/logger"
	"github.com/douhashi/dday-labeler/internal/types"
	"golang.org/x/sync/errgroup"
)

// LabelClient はプルリクエストのラベルを操作するクライアントのインターフェース
type LabelClient interface {
	RemoveLabel(ctx context.Context, number int, label string) error
	AddLabels(ctx context.Context, number int, labels []string) error
}

// UpdateError はプルリクエストのラベル更新に失敗した場合のエラー
type UpdateError struct {
	Number int
	Err    error
}

// Error implements the error interface
func (e *UpdateError) Error() string {
	return fmt.Sprintf("failed to update label for PR #%d: %v", e.Number, e.Err)
}

// Unwrap returns the original error
func (e *UpdateError) Unwrap() error {
	return e.Err
}

// Updater はカウントダウンラベルの付け替えを行う
type Updater struct {
	client LabelClient
	logger logger.Logger
}

// NewUpdater は新しいUpdaterを作成する
func NewUpdater(client LabelClient, log logger.Logger) *Updater {
	return &Updater{
		client: client,
		logger: log,
	}
}

// Update は1件のラベル変更を適用する。
// 変更前後のラベルが同じ場合はAPIを呼ばずにfalseを返す。
func (u *Updater) Update(ctx context.Context, change types.LabelChange) (bool, error) {
	if change.IsNoop() {
		return false, nil
	}

	// 削除と追加は互いを待たずに発行する
	var g errgroup.Group
	g.Go(func() error {
		if err := u.client.RemoveLabel(ctx, change.Number, change.Current); err != nil {
			return fmt.Errorf("failed to remove label %s: %w", change.Current, err)
		}
		return nil
	})
	g.Go(func() error {
		if err := u.client.AddLabels(ctx, change.Number, []string{change.Next}); err != nil {
			return fmt.Errorf("failed to add label %s: %w", change.Next, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		u.logger.Warn("Failed to update label",
			"pr_number", change.Number,
			"error", err.Error(),
		)
		return false, &UpdateError{Number: change.Number, Err: err}
	}

	u.logger.Info("Successfully updated label",
		"pr_number", change.Number,
		"from", change.Current,
		"to", change.Next,
	)

	return true, nil
}

// UpdateAll はすべてのラベル変更を並行に適用し、変更ごとの結果を入力と同じ順序で返す。
// 一部が失敗しても他の変更は最後まで実行され、最初に発生したエラーを返す。
func (u *Updater) UpdateAll(ctx context.Context, changes []types.LabelChange) ([]bool, error) {
	results := make([]bool, len(changes))

	// WithContextを使わないため、失敗した変更が他の変更をキャンセルすることはない
	var g errgroup.Group
	for i, change := range changes {
		g.Go(func() error {
			updated, err := u.Update(ctx, change)
			results[i] = updated
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}

// CountUpdated は実際に更新されたプルリクエストの数を返す
func CountUpdated(results []bool) int {
	count := 0
	for _, updated := range results {
		if updated {
			count++
		}
	}
	return count
}
