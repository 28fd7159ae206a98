package options

import (
	"errors"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"

	"threshold-life/internal/config"
)

// SurveyPrompter asks on the terminal with survey input prompts.
type SurveyPrompter struct {
	out  io.Writer
	opts []survey.AskOpt
	bad  *color.Color
}

// NewSurveyPrompter writes rejection notices to out (stderr when nil) and
// passes opts to every survey.AskOne call.
func NewSurveyPrompter(out io.Writer, opts ...survey.AskOpt) *SurveyPrompter {
	if out == nil {
		out = os.Stderr
	}
	return &SurveyPrompter{out: out, opts: opts, bad: color.New(color.FgRed)}
}

// Ask shows an input prompt with def prefilled. Ctrl-C yields ErrCanceled.
func (p *SurveyPrompter) Ask(message, def string) (string, error) {
	prompt := &survey.Input{
		Message: message,
		Default: def,
	}
	var result string
	if err := survey.AskOne(prompt, &result, p.opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrCanceled
		}
		return "", err
	}
	return result, nil
}

// Reject prints the validation message for err in red.
func (p *SurveyPrompter) Reject(err error) {
	_, _ = p.bad.Fprintf(p.out, "Invalid input: %s\n", config.UserMessage(err))
}
