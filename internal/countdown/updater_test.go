package countdown

import (
	"context"
	"errors"
	"testing"

	"github.com/douhashi/dday-labeler/internal/testutil/helpers"
	"github.com/douhashi/dday-labeler/internal/testutil/mocks"
	"github.com/douhashi/dday-labeler/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestUpdater_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: ラベルが同じ場合はAPIを呼ばずにfalseを返す", func(t *testing.T) {
		client := mocks.NewMockGitHubClient()
		log, observed := helpers.NewObservableLogger(zapcore.DebugLevel)
		updater := NewUpdater(client, log)

		updated, err := updater.Update(ctx, types.LabelChange{Number: 3, Current: "D-0", Next: "D-0"})

		require.NoError(t, err)
		assert.False(t, updated)
		client.AssertNotCalled(t, "RemoveLabel", mock.Anything, mock.Anything, mock.Anything)
		client.AssertNotCalled(t, "AddLabels", mock.Anything, mock.Anything, mock.Anything)
		assert.Equal(t, 0, observed.Len())
	})

	t.Run("正常系: 削除と追加がそれぞれ1回呼ばれtrueを返す", func(t *testing.T) {
		client := mocks.NewMockGitHubClient()
		client.On("RemoveLabel", mock.Anything, 1, "D-3").Return(nil).Once()
		client.On("AddLabels", mock.Anything, 1, []string{"D-2"}).Return(nil).Once()
		log, observed := helpers.NewObservableLogger(zapcore.DebugLevel)
		updater := NewUpdater(client, log)

		updated, err := updater.Update(ctx, types.LabelChange{Number: 1, Current: "D-3", Next: "D-2"})

		require.NoError(t, err)
		assert.True(t, updated)
		client.AssertExpectations(t)
		client.AssertNumberOfCalls(t, "RemoveLabel", 1)
		client.AssertNumberOfCalls(t, "AddLabels", 1)

		logs := observed.FilterMessage("Successfully updated label").All()
		require.Len(t, logs, 1)
		assert.Equal(t, zapcore.InfoLevel, logs[0].Level)
		assert.Equal(t, int64(1), logs[0].ContextMap()["pr_number"])
		assert.Equal(t, "D-3", logs[0].ContextMap()["from"])
		assert.Equal(t, "D-2", logs[0].ContextMap()["to"])
	})

	t.Run("異常系: 削除に失敗するとUpdateErrorを返し警告を出力する", func(t *testing.T) {
		removeErr := errors.New("boom")
		client := mocks.NewMockGitHubClient()
		client.On("RemoveLabel", mock.Anything, 5, "D-2").Return(removeErr)
		client.On("AddLabels", mock.Anything, 5, []string{"D-1"}).Return(nil)
		log, observed := helpers.NewObservableLogger(zapcore.DebugLevel)
		updater := NewUpdater(client, log)

		updated, err := updater.Update(ctx, types.LabelChange{Number: 5, Current: "D-2", Next: "D-1"})

		require.Error(t, err)
		assert.False(t, updated)
		var updateErr *UpdateError
		require.True(t, errors.As(err, &updateErr))
		assert.Equal(t, 5, updateErr.Number)
		assert.ErrorIs(t, err, removeErr)
		// 削除が失敗しても追加は発行済み
		client.AssertExpectations(t)

		warns := observed.FilterLevelExact(zapcore.WarnLevel).All()
		require.Len(t, warns, 1)
		assert.Equal(t, int64(5), warns[0].ContextMap()["pr_number"])
		assert.Contains(t, warns[0].ContextMap()["error"], "boom")
	})

	t.Run("異常系: 追加に失敗するとエラーを返す", func(t *testing.T) {
		addErr := errors.New("add failed")
		client := mocks.NewMockGitHubClient()
		client.On("RemoveLabel", mock.Anything, 8, "D-4").Return(nil)
		client.On("AddLabels", mock.Anything, 8, []string{"D-3"}).Return(addErr)
		log, _ := helpers.NewObservableLogger(zapcore.DebugLevel)
		updater := NewUpdater(client, log)

		updated, err := updater.Update(ctx, types.LabelChange{Number: 8, Current: "D-4", Next: "D-3"})

		assert.False(t, updated)
		assert.ErrorIs(t, err, addErr)
		assert.Contains(t, err.Error(), "failed to add label D-3")
	})
}

func TestUpdater_UpdateAll(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 結果が入力と同じ順序で返る", func(t *testing.T) {
		client := mocks.NewMockGitHubClient()
		client.On("RemoveLabel", mock.Anything, 1, "D-3").Return(nil).Once()
		client.On("AddLabels", mock.Anything, 1, []string{"D-2"}).Return(nil).Once()
		log, _ := helpers.NewObservableLogger(zapcore.DebugLevel)
		updater := NewUpdater(client, log)

		changes := ExtractChanges([]types.PullRequestSummary{
			{Number: 1, Labels: []string{"D-3"}},
			{Number: 2, Labels: []string{"foo"}},
			{Number: 3, Labels: []string{"D-0"}},
		})
		results, err := updater.UpdateAll(ctx, changes)

		require.NoError(t, err)
		assert.Equal(t, []bool{true, false}, results)
		assert.Equal(t, 1, CountUpdated(results))
		client.AssertExpectations(t)
		client.AssertNotCalled(t, "RemoveLabel", mock.Anything, 3, mock.Anything)
	})

	t.Run("異常系: 1件の失敗で全体はエラーになるが他の変更は実行される", func(t *testing.T) {
		removeErr := errors.New("remove rejected")
		client := mocks.NewMockGitHubClient()
		client.On("RemoveLabel", mock.Anything, 1, "D-3").Return(nil).Once()
		client.On("AddLabels", mock.Anything, 1, []string{"D-2"}).Return(nil).Once()
		client.On("RemoveLabel", mock.Anything, 2, "D-5").Return(removeErr).Once()
		client.On("AddLabels", mock.Anything, 2, []string{"D-4"}).Return(nil).Once()
		client.On("RemoveLabel", mock.Anything, 3, "D-1").Return(nil).Once()
		client.On("AddLabels", mock.Anything, 3, []string{"D-0"}).Return(nil).Once()
		log, observed := helpers.NewObservableLogger(zapcore.DebugLevel)
		updater := NewUpdater(client, log)

		results, err := updater.UpdateAll(ctx, []types.LabelChange{
			{Number: 1, Current: "D-3", Next: "D-2"},
			{Number: 2, Current: "D-5", Next: "D-4"},
			{Number: 3, Current: "D-1", Next: "D-0"},
		})

		require.Error(t, err)
		var updateErr *UpdateError
		require.True(t, errors.As(err, &updateErr))
		assert.Equal(t, 2, updateErr.Number)
		assert.ErrorIs(t, err, removeErr)
		assert.Equal(t, []bool{true, false, true}, results)
		client.AssertExpectations(t)
		assert.Equal(t, 2, observed.FilterMessage("Successfully updated label").Len())
		assert.Equal(t, 1, observed.FilterMessage("Failed to update label").Len())
	})

	t.Run("正常系: 変更がない場合は空の結果を返す", func(t *testing.T) {
		client := mocks.NewMockGitHubClient()
		log, _ := helpers.NewObservableLogger(zapcore.DebugLevel)
		updater := NewUpdater(client, log)

		results, err := updater.UpdateAll(ctx, nil)

		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Equal(t, 0, CountUpdated(results))
	})
}
