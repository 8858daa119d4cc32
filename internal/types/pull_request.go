package types

// PullRequestSummary はラベル更新に必要なプルリクエストの情報
type PullRequestSummary struct {
	Number int
	Labels []string
}

// LabelChange は1つのプルリクエストに対するカウントダウンラベルの変更
type LabelChange struct {
	Number  int
	Current string
	Next    string
}

// IsNoop は変更前後のラベルが同じかどうかを返す
func (c LabelChange) IsNoop() bool {
	return c.Current == c.Next
}
