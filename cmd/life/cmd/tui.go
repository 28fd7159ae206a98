package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"threshold-life/internal/logger"
	"threshold-life/internal/options"
	"threshold-life/internal/session"
	"threshold-life/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the board in the terminal",
	Long: `Run the board in the terminal. Click cells to bring them to life,
space pauses, n steps once, o opens the options prompts, r restarts and q quits.`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().String("log-file", "", "write logs to this file while the screen is active")
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isInteractive() {
		return fmt.Errorf("tui needs an interactive terminal")
	}
	cfg, disp, err := loadSettings()
	if err != nil {
		return err
	}

	logPath, _ := cmd.Flags().GetString("log-file")
	var sink io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		sink = f
	}
	logger.SetWriter(sink)
	defer logger.SetWriter(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess := session.New(cfg, disp, logger.Default().WithPrefix("tui"))
	flow := options.NewFlow(options.NewSurveyPrompter(os.Stderr))
	return tui.Run(ctx, sess, flow)
}
