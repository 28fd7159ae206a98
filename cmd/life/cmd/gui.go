package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"threshold-life/internal/app"
	"threshold-life/internal/logger"
	"threshold-life/internal/options"
	"threshold-life/internal/session"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Run the board in a window (build with -tags ebiten)",
	Long: `Run the board in a window. Click cells to bring them to life, space
pauses, n steps once, r restarts, s seeds a random soup and q quits. When
started from a terminal, o asks for new options there.`,
	RunE: runGUI,
}

func runGUI(_ *cobra.Command, _ []string) error {
	cfg, disp, err := loadSettings()
	if err != nil {
		return err
	}
	sess := session.New(cfg, disp, logger.Default().WithPrefix("gui"))

	var flow session.Configurer
	if isInteractive() {
		flow = options.NewFlow(options.NewSurveyPrompter(os.Stderr))
	}
	return app.Run(sess, flow)
}
