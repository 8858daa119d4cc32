package github

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/douhashi/dday-labeler/internal/logger"
)

// loggingRoundTripper はGitHub APIへのリクエストとレスポンスをログ出力するラウンドトリッパー
type loggingRoundTripper struct {
	base   http.RoundTripper
	logger logger.Logger
}

// RoundTrip はHTTPリクエストを実行し、結果をデバッグログに出力する
func (rt *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	fields := []interface{}{
		"method", req.Method,
		"path", req.URL.Path,
	}
	if auth := req.Header.Get("Authorization"); auth != "" {
		fields = append(fields, "authorization", maskAuthHeader(auth))
	}
	rt.logger.Debug("github_api_request", fields...)

	resp, err := rt.base.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		rt.logger.Debug("github_api_error",
			"method", req.Method,
			"path", req.URL.Path,
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)
		return nil, err
	}

	respFields := []interface{}{
		"method", req.Method,
		"path", req.URL.Path,
		"status_code", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	}
	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		respFields = append(respFields, "rate_limit_remaining", remaining)
	}
	rt.logger.Debug("github_api_response", respFields...)

	return resp, nil
}

// maskAuthHeader はAuthorizationヘッダーの値をマスキングする
func maskAuthHeader(auth string) string {
	if auth == "" {
		return ""
	}

	parts := strings.SplitN(auth, " ", 2)
	if len(parts) == 2 {
		return fmt.Sprintf("%s [REDACTED]", parts[0])
	}
	return "[REDACTED]"
}
