package countdown

import (
	"fmt"
	"regexp"
	"strconv"
)

// labelPattern はカウントダウンラベル（D-<日数>）のパターン
var labelPattern = regexp.MustCompile(`^D-(\d+)$`)

// MatchError はカウントダウンラベルの形式でない文字列が渡された場合のエラー
type MatchError struct {
	Label string
}

// Error implements the error interface
func (e *MatchError) Error() string {
	return fmt.Sprintf("label %q does not match %s", e.Label, labelPattern.String())
}

// IsCountdownLabel はラベル名がカウントダウンラベルかどうかを判定する
func IsCountdownLabel(name string) bool {
	return labelPattern.MatchString(name)
}

// FormatLabel は日数からカウントダウンラベルを作成する
func FormatLabel(days int) string {
	return fmt.Sprintf("D-%d", days)
}

// NextLabel は現在のカウントダウンラベルから次のラベルを計算する。
// 日数は0で止まり、負の値にはならない。
func NextLabel(name string) (string, error) {
	matches := labelPattern.FindStringSubmatch(name)
	if len(matches) < 2 {
		return "", &MatchError{Label: name}
	}

	days, err := strconv.Atoi(matches[1])
	if err != nil {
		// 桁数が多すぎてintに収まらない場合
		return "", &MatchError{Label: name}
	}

	next := days - 1
	if days <= 0 {
		next = 0
	}

	return FormatLabel(next), nil
}
