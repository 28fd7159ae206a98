package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"threshold-life/internal/config"
	"threshold-life/internal/logger"
)

var (
	cfgFile  string
	logLevel string
	noColor  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Game of Life with a configurable birth threshold",
	Long: `life runs a Game of Life variant on a bounded grid where the number of
live neighbors that brings a dead cell to life is configurable (1-8).
Live cells survive with two or three live neighbors.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.threshold-life/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.String("threshold", "", "live neighbors needed for a birth (1-8)")
	flags.String("grid", "", "board size as <rows>x<cols>, each at least 5")
	flags.Int("cell-size", 0, "pixels per cell in the GUI")
	flags.String("interval", "", "time between generations, e.g. 500ms")

	_ = viper.BindPFlag(config.KeyBirthThreshold, flags.Lookup("threshold"))
	_ = viper.BindPFlag(config.KeyGrid, flags.Lookup("grid"))
	_ = viper.BindPFlag(config.KeyCellSize, flags.Lookup("cell-size"))
	_ = viper.BindPFlag(config.KeyInterval, flags.Lookup("interval"))

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(sweepCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	logger.SetLevel(logger.ParseLevel(logLevel))
	logger.SetNoColor(noColor)
	if noColor {
		color.NoColor = true
	}

	config.SetDefaults(viper.GetViper())
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("$HOME/.threshold-life")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	if err := viper.ReadInConfig(); err == nil {
		logger.Debugf("using config file %s", viper.ConfigFileUsed())
	}
}

// loadSettings validates the merged flag, environment and file settings.
func loadSettings() (config.Config, config.Display, error) {
	return config.Load(viper.GetViper())
}

// configPath returns where the options command saves to.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}
	return config.DefaultPath()
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
