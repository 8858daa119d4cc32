package countdown

import "github.com/douhashi/dday-labeler/internal/types"

// ExtractChanges はプルリクエスト一覧から適用すべきラベル変更を抽出する。
// 各プルリクエストで最初に見つかったカウントダウンラベルのみを対象とし、
// カウントダウンラベルを持たないプルリクエストは除外する。
func ExtractChanges(prs []types.PullRequestSummary) []types.LabelChange {
	changes := make([]types.LabelChange, 0, len(prs))

	for _, pr := range prs {
		current, ok := findCountdownLabel(pr.Labels)
		if !ok {
			continue
		}

		next, err := NextLabel(current)
		if err != nil {
			// findCountdownLabelで検証済みのため通常は発生しない
			continue
		}

		changes = append(changes, types.LabelChange{
			Number:  pr.Number,
			Current: current,
			Next:    next,
		})
	}

	return changes
}

// findCountdownLabel はラベル一覧から最初のカウントダウンラベルを探す
func findCountdownLabel(labels []string) (string, bool) {
	for _, label := range labels {
		if IsCountdownLabel(label) {
			return label, true
		}
	}
	return "", false
}
