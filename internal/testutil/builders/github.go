package builders

import (
	"github.com/douhashi/dday-labeler/internal/types"
)

// PullRequestBuilder builds types.PullRequestSummary instances for testing
type PullRequestBuilder struct {
	pr types.PullRequestSummary
}

// NewPullRequestBuilder creates a new PullRequestBuilder with sensible defaults
func NewPullRequestBuilder() *PullRequestBuilder {
	return &PullRequestBuilder{
		pr: types.PullRequestSummary{
			Number: 1,
			Labels: []string{},
		},
	}
}

// WithNumber sets the pull request number
func (b *PullRequestBuilder) WithNumber(number int) *PullRequestBuilder {
	b.pr.Number = number
	return b
}

// WithLabels sets the pull request labels
func (b *PullRequestBuilder) WithLabels(labels ...string) *PullRequestBuilder {
	b.pr.Labels = append([]string{}, labels...)
	return b
}

// WithLabel adds a single label to the pull request
func (b *PullRequestBuilder) WithLabel(label string) *PullRequestBuilder {
	b.pr.Labels = append(b.pr.Labels, label)
	return b
}

// Build returns a copy of the built pull request
func (b *PullRequestBuilder) Build() types.PullRequestSummary {
	pr := b.pr
	pr.Labels = append([]string{}, b.pr.Labels...)
	return pr
}
