package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/douhashi/dday-labeler/internal/logger"
	"github.com/douhashi/dday-labeler/internal/version"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	envFile string
	verbose bool
	rootCmd *cobra.Command
	appLog  logger.Logger
)

func init() {
	rootCmd = NewRootCmd()
}

// NewRootCmd creates a new root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	return cmd
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dday-labeler",
		Short: "プルリクエストのD-Nラベルを毎日カウントダウンする",
		Long: `dday-labelerは、オープンなプルリクエストに付いたD-Nラベルを
1日に1回D-(N-1)へ付け替えるツールです。休日として設定された日は何もしません。`,
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .envは既存の環境変数を上書きしない
			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					return fmt.Errorf("failed to load env file: %w", err)
				}
			}

			if verbose {
				os.Setenv("DEBUG", "true")
			}
			var err error
			appLog, err = logger.NewFromEnv(logger.WithOutput(cmd.OutOrStdout()))
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "設定ファイルのパス")
	cmd.PersistentFlags().StringVar(&envFile, "env-file", "", "読み込む.envファイルのパス")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "詳細出力")

	return cmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		reportFailure(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// reportFailure は失敗を出力する。GitHub Actions上ではワークフローコマンドとして出力する。
func reportFailure(w io.Writer, err error) {
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		fmt.Fprintf(w, "::error::%s\n", escapeWorkflowData(err.Error()))
		return
	}
	fmt.Fprintln(w, err)
}

// escapeWorkflowData はワークフローコマンドのメッセージ部分をエスケープする
func escapeWorkflowData(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A").Replace(s)
}
