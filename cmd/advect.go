package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"kilngas/advection"
	"kilngas/config"
	"kilngas/logging"
)

func newAdvectCmd(cfgPath *string) *cobra.Command {
	var (
		nx          int
		tend, sigma float64
	)

	advectCmd := &cobra.Command{
		Use:   "advect",
		Short: "advect run the 1-D linear advection upwind demo.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			if err = logging.InitLogger(cfg.Log); err != nil {
				return err
			}

			p := advection.DefaultParams(nx)
			if tend > 0 {
				if p, err = advection.NewCFL(p.Length, p.Speed, nx, tend, sigma); err != nil {
					return err
				}
			}
			res, err := advection.Simulate(p)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			color.New(color.FgGreen, color.Bold).Fprintf(w, "nx = %d, nt = %d, dt = %g, courant = %.4f\n",
				p.Nx, p.Nt, p.Dt, p.Courant())
			fmt.Fprintf(w, "%10s %10s %10s\n", "x [m]", "u0 [-]", "u [-]")
			for i := range res.X {
				fmt.Fprintf(w, "%10.4f %10.4f %10.4f\n", res.X[i], res.Initial[i], res.Final[i])
			}
			return nil
		},
	}
	advectCmd.Flags().IntVar(&nx, "nx", 41, "number of grid points")
	advectCmd.Flags().Float64Var(&tend, "tend", 0, "end time [s]; when set the step count follows the CFL number")
	advectCmd.Flags().Float64Var(&sigma, "sigma", 0.5, "CFL number used with --tend")
	return advectCmd
}
