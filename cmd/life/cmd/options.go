package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"threshold-life/internal/config"
	"threshold-life/internal/logger"
	"threshold-life/internal/options"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Choose the birth threshold and board size interactively",
	RunE:  runOptions,
}

func init() {
	optionsCmd.Flags().Bool("save", false, "write the chosen options to the config file")
	optionsCmd.Flags().Int("attempts", options.DefaultMaxAttempts, "invalid answers allowed per option")
}

func runOptions(cmd *cobra.Command, _ []string) error {
	if !isInteractive() {
		return fmt.Errorf("options needs an interactive terminal")
	}
	current, disp, err := loadSettings()
	if err != nil {
		return err
	}

	attempts, _ := cmd.Flags().GetInt("attempts")
	flow := &options.Flow{Prompter: options.NewSurveyPrompter(os.Stderr), MaxAttempts: attempts}
	cfg, err := flow.Run(current)
	if errors.Is(err, options.ErrCanceled) {
		logger.Warnf("options canceled, keeping %s", current)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "birth threshold %d, grid %s\n", cfg.BirthThreshold(), cfg.GridSize())

	if save, _ := cmd.Flags().GetBool("save"); save {
		path, err := configPath()
		if err != nil {
			return err
		}
		if err := config.Save(path, cfg, disp); err != nil {
			return err
		}
		logger.Infof("saved options to %s", path)
	}
	return nil
}
