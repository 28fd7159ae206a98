package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"threshold-life/internal/config"
	"threshold-life/internal/core"
	"threshold-life/internal/sims/life"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the effective configuration",
	RunE:  runInfo,
}

type infoReport struct {
	Config     config.File            `yaml:"config"`
	ConfigFile string                 `yaml:"config_file,omitempty"`
	Parameters core.ParameterSnapshot `yaml:"parameters"`
	Patterns   []string               `yaml:"patterns"`
}

func runInfo(cmd *cobra.Command, _ []string) error {
	cfg, disp, err := loadSettings()
	if err != nil {
		return err
	}
	path, _ := configPath()
	report := infoReport{
		Config:     config.NewFile(cfg, disp),
		ConfigFile: path,
		Parameters: life.New(cfg).Parameters(),
		Patterns:   life.PatternNames(),
	}
	out, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal info: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
