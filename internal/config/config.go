package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix は設定を上書きする環境変数のプレフィックス
const EnvPrefix = "DDAY"

// DefaultUTCOffset は「今日」を判定するタイムゾーンのデフォルト（KST）
const DefaultUTCOffset = 9 * time.Hour

// DefaultHolidays はラベル更新を休む日のデフォルト一覧
var DefaultHolidays = []string{
	"2024-04-10", // 国会議員選挙
	"2024-05-01", // 勤労者の日
	"2024-05-06", // こどもの日 振替休日
	"2024-05-15", // 釈迦誕生日
	"2024-06-06", // 顕忠日
	"2024-08-15", // 光復節
	"2024-09-16", // 秋夕
	"2024-09-17", // 秋夕
	"2024-09-18", // 秋夕
	"2024-10-03", // 開天節
	"2024-10-09", // ハングルの日
	"2024-12-25", // クリスマス
}

// Config はアプリケーション全体の設定
type Config struct {
	GitHub   GitHubConfig   `mapstructure:"github"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
}

// GitHubConfig はGitHub関連の設定
type GitHubConfig struct {
	Token      string `mapstructure:"token"`
	Repository string `mapstructure:"repository"`
	APIURL     string `mapstructure:"api_url"`
}

// ScheduleConfig は実行日の判定に関する設定
type ScheduleConfig struct {
	UTCOffset time.Duration `mapstructure:"utc_offset"`
	Holidays  []string      `mapstructure:"holidays"`
}

// NewConfig は新しいConfigを作成する
func NewConfig() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			UTCOffset: DefaultUTCOffset,
			Holidays:  append([]string{}, DefaultHolidays...),
		},
	}
}

// Load は設定ファイルと環境変数から設定を読み込む。
// configPathが空の場合は環境変数とデフォルト値のみを使う。
func (c *Config) Load(configPath string) error {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// GitHub Actionsが設定する環境変数もサポート
	v.BindEnv("github.token", EnvPrefix+"_GITHUB_TOKEN", "INPUT_TOKEN", "GITHUB_TOKEN")
	v.BindEnv("github.repository", EnvPrefix+"_GITHUB_REPOSITORY", "GITHUB_REPOSITORY")
	v.BindEnv("github.api_url", EnvPrefix+"_GITHUB_API_URL", "GITHUB_API_URL")

	// デフォルト値の設定（AutomaticEnvはキーが既知の場合のみ働く）
	v.SetDefault("github.token", "")
	v.SetDefault("github.repository", "")
	v.SetDefault("github.api_url", "")
	v.SetDefault("schedule.utc_offset", DefaultUTCOffset)
	v.SetDefault("schedule.holidays", DefaultHolidays)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 既存のスライスに重ねて書き込まないよう新しい構造体にデコードする
	var loaded Config
	if err := v.Unmarshal(&loaded); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	*c = loaded

	return nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if c.GitHub.Token == "" {
		return errors.New("GitHub token is required")
	}

	if _, _, err := splitRepository(c.GitHub.Repository); err != nil {
		return err
	}

	if c.Schedule.UTCOffset < -14*time.Hour || c.Schedule.UTCOffset > 14*time.Hour {
		return fmt.Errorf("utc offset must be between -14h and 14h: %s", c.Schedule.UTCOffset)
	}

	for _, date := range c.Schedule.Holidays {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("invalid holiday %q: must be YYYY-MM-DD", date)
		}
	}

	return nil
}

// OwnerRepo はrepository設定をownerとrepoに分割して返す
func (c *Config) OwnerRepo() (string, string, error) {
	return splitRepository(c.GitHub.Repository)
}

// splitRepository は owner/repo 形式の文字列を分割する
func splitRepository(repository string) (string, string, error) {
	if repository == "" {
		return "", "", errors.New("repository is required (owner/repo)")
	}

	parts := strings.Split(repository, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q: must be owner/repo", repository)
	}

	return parts[0], parts[1], nil
}
