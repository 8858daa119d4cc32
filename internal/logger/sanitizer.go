package logger

import (
	"regexp"
	"strings"
)

const masked = "***MASKED***"

// sensitiveKeys はログに値を出してはいけないキー（小文字）
var sensitiveKeys = []string{
	"token",
	"password",
	"secret",
	"authorization",
	"auth",
	"credential",
	"api_key",
	"private_key",
}

// tokenPrefixes はマスク時に残すトークンのプレフィックスと、その値のパターン
var tokenPrefixes = []struct {
	prefix  string
	pattern *regexp.Regexp
}{
	{"ghp_", regexp.MustCompile(`^ghp_[A-Za-z0-9]{36,}$`)},
	{"ghs_", regexp.MustCompile(`^ghs_[A-Za-z0-9]{36,}$`)},
	{"ghu_", regexp.MustCompile(`^ghu_[A-Za-z0-9]{36,}$`)},
	{"ghi_", regexp.MustCompile(`^ghi_[A-Za-z0-9]{36,}$`)},
	{"github_pat_", regexp.MustCompile(`^github_pat_[A-Za-z0-9_]{22,}$`)},
	{"Bearer ", regexp.MustCompile(`(?i)^Bearer\s+[A-Za-z0-9\-_\.]{20,}$`)},
	{"token ", regexp.MustCompile(`(?i)^token\s+[A-Za-z0-9\-_\.]{20,}$`)},
}

// SanitizeValue は値がトークンの形をしていればプレフィックスを残してマスクする
func SanitizeValue(value interface{}) interface{} {
	if maskedValue, ok := maskToken(value); ok {
		return maskedValue
	}
	return value
}

// SanitizeArgs はログ引数（key-valueペア）をサニタイズしたコピーを返す
func SanitizeArgs(args ...interface{}) []interface{} {
	if len(args) == 0 {
		return args
	}

	sanitized := make([]interface{}, len(args))
	copy(sanitized, args)

	for i := 0; i+1 < len(sanitized); i += 2 {
		key, ok := sanitized[i].(string)
		if !ok {
			continue
		}

		maskedValue, isToken := maskToken(sanitized[i+1])
		switch {
		case isSensitiveKey(key) && !(isToken && strings.EqualFold(key, "authorization")):
			sanitized[i+1] = masked
		case isToken:
			sanitized[i+1] = maskedValue
		}
	}

	return sanitized
}

// maskToken は値がトークンの形であればマスクした文字列を返す
func maskToken(value interface{}) (string, bool) {
	str, ok := value.(string)
	if !ok || str == "" {
		return "", false
	}

	for _, tp := range tokenPrefixes {
		if tp.pattern.MatchString(str) {
			return tp.prefix + masked, true
		}
	}

	return "", false
}

// isSensitiveKey はキーがセンシティブかどうかを単語単位で判定する
func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)

	for _, word := range strings.Split(lowerKey, "_") {
		for _, sensitive := range sensitiveKeys {
			if word == sensitive {
				return true
			}
		}
	}

	// api_key のように複数語からなるキー
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(sensitive, "_") && strings.Contains(lowerKey, sensitive) {
			return true
		}
	}

	return false
}
