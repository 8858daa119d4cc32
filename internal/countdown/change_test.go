package countdown

import (
	"testing"

	"github.com/douhashi/dday-labeler/internal/testutil/builders"
	"github.com/douhashi/dday-labeler/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestExtractChanges(t *testing.T) {
	tests := []struct {
		name string
		prs  []types.PullRequestSummary
		want []types.LabelChange
	}{
		{
			name: "正常系: カウントダウンラベルを持つPRのみ抽出される",
			prs: []types.PullRequestSummary{
				builders.NewPullRequestBuilder().WithNumber(1).WithLabels("D-3").Build(),
				builders.NewPullRequestBuilder().WithNumber(2).WithLabels("foo").Build(),
				builders.NewPullRequestBuilder().WithNumber(3).WithLabels("D-0").Build(),
			},
			want: []types.LabelChange{
				{Number: 1, Current: "D-3", Next: "D-2"},
				{Number: 3, Current: "D-0", Next: "D-0"},
			},
		},
		{
			name: "正常系: 複数のカウントダウンラベルがある場合は最初のものを使う",
			prs: []types.PullRequestSummary{
				builders.NewPullRequestBuilder().WithNumber(7).WithLabels("bug", "D-5", "D-2").Build(),
			},
			want: []types.LabelChange{
				{Number: 7, Current: "D-5", Next: "D-4"},
			},
		},
		{
			name: "正常系: ラベルのないPRは除外される",
			prs: []types.PullRequestSummary{
				builders.NewPullRequestBuilder().WithNumber(4).Build(),
			},
			want: []types.LabelChange{},
		},
		{
			name: "正常系: 似た形式のラベルは対象外",
			prs: []types.PullRequestSummary{
				builders.NewPullRequestBuilder().WithNumber(5).WithLabels("D-", "d-1", "D-1a", "xD-1").Build(),
			},
			want: []types.LabelChange{},
		},
		{
			name: "正常系: 入力の順序が保たれる",
			prs: []types.PullRequestSummary{
				builders.NewPullRequestBuilder().WithNumber(20).WithLabels("D-1").Build(),
				builders.NewPullRequestBuilder().WithNumber(10).WithLabels("D-9").Build(),
			},
			want: []types.LabelChange{
				{Number: 20, Current: "D-1", Next: "D-0"},
				{Number: 10, Current: "D-9", Next: "D-8"},
			},
		},
		{
			name: "正常系: 空の入力",
			prs:  nil,
			want: []types.LabelChange{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractChanges(tt.prs)
			assert.Equal(t, tt.want, got)
		})
	}
}
