package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"threshold-life/internal/config"
	"threshold-life/internal/render"
	"threshold-life/internal/sims/life"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run generations headlessly and print the board",
	Example: `  life simulate --grid 5x5 --pattern blinker --at 2,1 --generations 2 --every
  life simulate --threshold 2 --alive 3,3 --alive 3,4 --generations 5`,
	RunE: runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.StringArray("alive", nil, "cell to bring to life as row,col (repeatable)")
	f.String("pattern", "", "named pattern to place: "+strings.Join(life.PatternNames(), ", "))
	f.String("at", "0,0", "anchor row,col for --pattern")
	f.Float64("random", 0, "fill the board with this live-cell density first")
	f.Int64("seed", 1, "seed for --random")
	f.Int("generations", 10, "number of generations to run")
	f.Bool("every", false, "print every generation, not just the last")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadSettings()
	if err != nil {
		return err
	}
	f := cmd.Flags()
	generations, _ := f.GetInt("generations")
	if generations < 0 {
		return fmt.Errorf("generations must not be negative, got %d", generations)
	}
	every, _ := f.GetBool("every")

	b := life.New(cfg)
	if density, _ := f.GetFloat64("random"); density > 0 {
		seed, _ := f.GetInt64("seed")
		b.Randomize(seed, density)
	}
	if err := seedBoard(b, cmd); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if every {
		printGeneration(out, b)
	}
	for i := 0; i < generations; i++ {
		b.Step()
		if every {
			printGeneration(out, b)
		}
	}
	if !every {
		printGeneration(out, b)
	}
	return nil
}

func seedBoard(b *life.Board, cmd *cobra.Command) error {
	f := cmd.Flags()
	cells, _ := f.GetStringArray("alive")
	for _, raw := range cells {
		row, col, err := parseCoord(raw)
		if err != nil {
			return err
		}
		if err := b.Place(life.Pattern{{0, 0}}, row, col); err != nil {
			return err
		}
	}

	name, _ := f.GetString("pattern")
	if name == "" {
		return nil
	}
	pattern, ok := life.Patterns[name]
	if !ok {
		return fmt.Errorf("unknown pattern %q (known: %s)", name, strings.Join(life.PatternNames(), ", "))
	}
	at, _ := f.GetString("at")
	row, col, err := parseCoord(at)
	if err != nil {
		return err
	}
	return b.Place(pattern, row, col)
}

func parseCoord(raw string) (int, int, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid cell %q: expected row,col", raw)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row in %q: %w", raw, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column in %q: %w", raw, err)
	}
	return row, col, nil
}

func printGeneration(w io.Writer, b *life.Board) {
	fmt.Fprintf(w, "generation %d (population %d, %s)\n", b.Generation(), b.Population(), describe(b.Config()))
	fmt.Fprint(w, render.Text(b))
}

func describe(cfg config.Config) string {
	return fmt.Sprintf("birth %d, %s", cfg.BirthThreshold(), cfg.GridSize())
}
