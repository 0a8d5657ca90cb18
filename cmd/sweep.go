package cmd

import (
	"encoding/json"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"kilngas/sweep"
)

func newSweepCmd(cfgPath *string) *cobra.Command {
	var (
		name       string
		points     int
		tmin, tmax float64
		format     string
	)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep evaluate a species over evenly spaced temperatures.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, reg, err := setup(*cfgPath)
			if err != nil {
				return err
			}
			s, err := reg.Get(name)
			if err != nil {
				return err
			}
			if points == 0 {
				points = cfg.Sweep.Points
			}
			low, high := s.Thermo().Bounds()
			if cmd.Flags().Changed("tmin") {
				low = tmin
			}
			if cmd.Flags().Changed("tmax") {
				high = tmax
			}

			start := time.Now()
			result, err := sweep.New(cfg.Sweep.Workers).Scan(s, low, high, points)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			case "table":
				printHeader(w, s)
				for _, p := range result {
					printPoint(w, p)
				}
				color.New(color.FgCyan).Fprintf(w, "%d points in %v\n", len(result), time.Since(start))
				return nil
			default:
				return errors.Errorf("unknown format %q", format)
			}
		},
	}
	sweepCmd.Flags().StringVarP(&name, "species", "s", "H2", "species name")
	sweepCmd.Flags().IntVarP(&points, "points", "n", 0, "number of points, defaults to [sweep] points")
	sweepCmd.Flags().Float64Var(&tmin, "tmin", 0, "lower temperature [K], defaults to the species range")
	sweepCmd.Flags().Float64Var(&tmax, "tmax", 0, "upper temperature [K], defaults to the species range")
	sweepCmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table or json")
	return sweepCmd
}
