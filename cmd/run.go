package cmd

import (
	"context"
	"fmt"

	"github.com/douhashi/dday-labeler/internal/config"
	"github.com/douhashi/dday-labeler/internal/github"
	"github.com/douhashi/dday-labeler/internal/holiday"
	"github.com/douhashi/dday-labeler/internal/labeler"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "ラベルのカウントダウンを1回実行",
		Long: `オープンなプルリクエストのD-NラベルをD-(N-1)に付け替えます。
D-0のラベルはそのまま残ります。今日が休日の場合は何もせずに終了します。`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewConfig()
			if err := cfg.Load(cfgFile); err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			calendar, err := holiday.NewCalendar(cfg.Schedule.Holidays, cfg.Schedule.UTCOffset)
			if err != nil {
				return fmt.Errorf("invalid schedule: %w", err)
			}

			runner := labeler.NewRunner(calendar, newClientFactory(cfg), appLog)
			result, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			if !result.Skipped {
				fmt.Fprintf(cmd.OutOrStdout(), "Successfully updated labels for all %d PRs.\n", result.Updated)
			}
			return nil
		},
	}

	return cmd
}

// newClientFactory は休日判定の後で認証済みクライアントを作るファクトリを返す
func newClientFactory(cfg *config.Config) labeler.ClientFactory {
	return func(ctx context.Context) (github.GitHubClient, error) {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		var opts []github.Option
		if appLog != nil {
			opts = append(opts, github.WithLogger(appLog))
		}
		if cfg.GitHub.APIURL != "" {
			opts = append(opts, github.WithBaseURL(cfg.GitHub.APIURL))
		}

		return github.NewClient(cfg.GitHub.Token, cfg.GitHub.Repository, opts...)
	}
}
