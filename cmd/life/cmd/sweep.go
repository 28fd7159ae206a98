package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"threshold-life/internal/logger"
	"threshold-life/internal/sweep"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compare every birth threshold on the same random soup",
	RunE:  runSweep,
}

func init() {
	f := sweepCmd.Flags()
	f.Int("generations", 200, "generations per threshold")
	f.Int64("seed", 1, "seed for the random soup")
	f.Float64("density", 0.3, "live-cell density of the soup")
	f.Int("workers", runtime.NumCPU(), "number of worker goroutines")
}

func runSweep(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadSettings()
	if err != nil {
		return err
	}
	f := cmd.Flags()
	p := sweep.Params{Rows: cfg.Rows(), Cols: cfg.Cols()}
	p.Generations, _ = f.GetInt("generations")
	p.Seed, _ = f.GetInt64("seed")
	p.Density, _ = f.GetFloat64("density")
	p.Workers, _ = f.GetInt("workers")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Infof("sweeping thresholds on %s for %d generations (%d workers)", cfg.GridSize(), p.Generations, p.Workers)
	results, err := sweep.Run(ctx, p)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	out := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BIRTH\tGENS\tINITIAL\tPEAK\tFINAL\tEXTINCT\tSTABLE")
	var died []string
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%s\t%s\n",
			r.BirthThreshold, r.GenerationsRun, r.Initial, r.Peak, r.Final,
			generationOrDash(r.ExtinctAt), generationOrDash(r.StableAt))
		if r.ExtinctAt >= 0 {
			died = append(died, strconv.Itoa(r.BirthThreshold))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(died) > 0 {
		_, err = color.New(color.FgRed).Fprintf(out, "died out with birth threshold %s\n", strings.Join(died, ", "))
	}
	return err
}

func generationOrDash(gen int) string {
	if gen < 0 {
		return "-"
	}
	return strconv.Itoa(gen)
}
