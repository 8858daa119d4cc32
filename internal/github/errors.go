package github

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"regexp"

	"github.com/google/go-github/v50/github"
)

// GitHubErrorType represents the type of GitHub API error
type GitHubErrorType int

const (
	// ErrorTypeRateLimit indicates rate limit exceeded
	ErrorTypeRateLimit GitHubErrorType = iota
	// ErrorTypeNetworkTimeout indicates network timeout
	ErrorTypeNetworkTimeout
	// ErrorTypeAuthentication indicates authentication failure
	ErrorTypeAuthentication
	// ErrorTypeNotFound indicates resource not found
	ErrorTypeNotFound
	// ErrorTypeServerError indicates server error (5xx)
	ErrorTypeServerError
	// ErrorTypeUnknown indicates unknown error type
	ErrorTypeUnknown
)

// String returns the string representation of the error type
func (t GitHubErrorType) String() string {
	switch t {
	case ErrorTypeRateLimit:
		return "RateLimit"
	case ErrorTypeNetworkTimeout:
		return "NetworkTimeout"
	case ErrorTypeAuthentication:
		return "Authentication"
	case ErrorTypeNotFound:
		return "NotFound"
	case ErrorTypeServerError:
		return "ServerError"
	default:
		return "Unknown"
	}
}

// GitHubError represents a structured GitHub API error
type GitHubError struct {
	Type        GitHubErrorType
	StatusCode  int
	Message     string
	OriginalErr error
}

// Error implements the error interface
func (e *GitHubError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GitHub API error [%s] (HTTP %d): %s", e.Type, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("GitHub API error [%s]: %s", e.Type, e.Message)
}

// Unwrap returns the original error
func (e *GitHubError) Unwrap() error {
	return e.OriginalErr
}

// IsRateLimitError checks if the error is a rate limit error
func IsRateLimitError(err error) bool {
	return hasErrorType(err, ErrorTypeRateLimit)
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return hasErrorType(err, ErrorTypeNotFound)
}

// IsAuthenticationError checks if the error is an authentication error
func IsAuthenticationError(err error) bool {
	return hasErrorType(err, ErrorTypeAuthentication)
}

func hasErrorType(err error, t GitHubErrorType) bool {
	var ghErr *GitHubError
	if errors.As(err, &ghErr) {
		return ghErr.Type == t
	}
	return false
}

var (
	// go-githubの型で判別できないエラーメッセージ用
	rateLimitRegex = regexp.MustCompile(`(?i)(rate limit|You have exceeded a secondary rate limit)`)
	networkRegex   = regexp.MustCompile(`(?i)(timeout|connection refused|connection reset|no such host|dial tcp)`)
)

// ClassifyError takes an error returned by go-github and classifies it as a GitHubError
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var ghErr *GitHubError
	if errors.As(err, &ghErr) {
		return err
	}

	classified := &GitHubError{
		Type:        ErrorTypeUnknown,
		Message:     err.Error(),
		OriginalErr: err,
	}

	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	var respErr *github.ErrorResponse
	var netErr net.Error

	switch {
	case errors.As(err, &rateErr):
		classified.Type = ErrorTypeRateLimit
		classified.Message = fmt.Sprintf("%s (reset at %v)", rateErr.Message, rateErr.Rate.Reset.Time)
		classified.StatusCode = statusCode(rateErr.Response)

	case errors.As(err, &abuseErr):
		classified.Type = ErrorTypeRateLimit
		classified.Message = abuseErr.Message
		classified.StatusCode = statusCode(abuseErr.Response)

	case errors.As(err, &respErr):
		classified.Message = respErr.Message
		classified.StatusCode = statusCode(respErr.Response)
		classified.Type = typeFromStatus(classified.StatusCode)

	case errors.Is(err, context.DeadlineExceeded):
		classified.Type = ErrorTypeNetworkTimeout

	case errors.As(err, &netErr) && netErr.Timeout():
		classified.Type = ErrorTypeNetworkTimeout

	case rateLimitRegex.MatchString(err.Error()):
		classified.Type = ErrorTypeRateLimit

	case networkRegex.MatchString(err.Error()):
		classified.Type = ErrorTypeNetworkTimeout
	}

	return classified
}

// typeFromStatus maps an HTTP status code to an error type
func typeFromStatus(code int) GitHubErrorType {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrorTypeAuthentication
	case code == http.StatusNotFound:
		return ErrorTypeNotFound
	case code == http.StatusTooManyRequests:
		return ErrorTypeRateLimit
	case code >= 500 && code < 600:
		return ErrorTypeServerError
	default:
		return ErrorTypeUnknown
	}
}

func statusCode(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
