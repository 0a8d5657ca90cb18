package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"kilngas/numerical"
	"kilngas/sweep"
	"kilngas/thermo"
)

var headerColor = color.New(color.FgGreen, color.Bold)

// 焓以 kJ/mol 输出
func printHeader(w io.Writer, s *thermo.Species) {
	tmin, tmax := s.Thermo().Bounds()
	headerColor.Fprintf(w, "%s (%s, M = %.3f g/mol, %g K ~ %g K)\n",
		s.Name(), s.Formula(), s.MolarMass(), tmin, tmax)
	headerColor.Fprintf(w, "%10s %14s %14s %14s\n", "T [K]", "cp [J/mol/K]", "h [kJ/mol]", "s [J/mol/K]")
}

func printPoint(w io.Writer, p sweep.Point) {
	fmt.Fprintf(w, "%10.2f %14.6f %14.6f %14.6f\n", p.Temperature, p.SpecificHeat, p.Enthalpy/1000, p.Entropy)
}

func newTableCmd(cfgPath *string) *cobra.Command {
	var (
		name  string
		temps []float64
	)

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "table print properties of a species at given temperatures.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reg, err := setup(*cfgPath)
			if err != nil {
				return err
			}
			s, err := reg.Get(name)
			if err != nil {
				return err
			}
			if len(temps) == 0 {
				tmin, tmax := s.Thermo().Bounds()
				temps = numerical.Linspace(tmin, tmax, 11)
			}

			w := cmd.OutOrStdout()
			printHeader(w, s)
			failed := 0
			for _, temp := range temps {
				p, err := sweep.Evaluate(s, temp)
				if err != nil {
					color.New(color.FgRed).Fprintf(w, "%10.2f %s\n", temp, err)
					failed++
					continue
				}
				printPoint(w, p)
			}
			if failed > 0 {
				return errors.Errorf("%d of %d temperatures out of range", failed, len(temps))
			}
			return nil
		},
	}
	tableCmd.Flags().StringVarP(&name, "species", "s", "H2", "species name")
	tableCmd.Flags().Float64SliceVarP(&temps, "temperature", "t", nil, "temperatures [K], defaults to 11 points over the valid range")
	return tableCmd
}
