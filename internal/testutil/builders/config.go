package builders

import (
	"time"

	"github.com/douhashi/dday-labeler/internal/config"
)

// ConfigBuilder builds config.Config instances for testing
type ConfigBuilder struct {
	cfg *config.Config
}

// NewConfigBuilder creates a new ConfigBuilder with sensible defaults
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: &config.Config{
			GitHub: config.GitHubConfig{
				Token:      "test-token",
				Repository: "douhashi/sandbox",
			},
			Schedule: config.ScheduleConfig{
				UTCOffset: config.DefaultUTCOffset,
				Holidays:  []string{},
			},
		},
	}
}

// WithToken sets the GitHub token
func (b *ConfigBuilder) WithToken(token string) *ConfigBuilder {
	b.cfg.GitHub.Token = token
	return b
}

// WithRepository sets the owner/repo
func (b *ConfigBuilder) WithRepository(repository string) *ConfigBuilder {
	b.cfg.GitHub.Repository = repository
	return b
}

// WithAPIURL sets the GitHub API base URL
func (b *ConfigBuilder) WithAPIURL(url string) *ConfigBuilder {
	b.cfg.GitHub.APIURL = url
	return b
}

// WithHolidays sets the holiday list
func (b *ConfigBuilder) WithHolidays(dates ...string) *ConfigBuilder {
	b.cfg.Schedule.Holidays = append([]string{}, dates...)
	return b
}

// WithUTCOffset sets the offset used to compute today
func (b *ConfigBuilder) WithUTCOffset(offset time.Duration) *ConfigBuilder {
	b.cfg.Schedule.UTCOffset = offset
	return b
}

// Build returns the built config
func (b *ConfigBuilder) Build() *config.Config {
	cfg := *b.cfg
	cfg.Schedule.Holidays = append([]string{}, b.cfg.Schedule.Holidays...)
	return &cfg
}
