package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kilngas/config"
	"kilngas/logging"
	"kilngas/registry"
)

func NewRootCmd() *cobra.Command {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:           "kilngas",
		Short:         "kilngas evaluates NASA-7 gas thermodynamic properties.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "welcome to use kilngas, use `kilngas -h` for help")
		},
	}
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", config.DefaultPath, "ini config file")

	rootCmd.AddCommand(
		newServeCmd(&cfgPath),
		newTableCmd(&cfgPath),
		newSweepCmd(&cfgPath),
		newAdvectCmd(&cfgPath),
		newVersionCmd(),
	)
	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup 读取配置、初始化日志并构造物种表（含额外物种文件）
func setup(cfgPath string) (*config.Config, *registry.Registry, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	if err = logging.InitLogger(cfg.Log); err != nil {
		return nil, nil, err
	}
	reg, err := registry.New(cfg.Constants())
	if err != nil {
		return nil, nil, err
	}
	if cfg.Thermo.SpeciesFile != "" {
		if _, err = reg.LoadTOML(cfg.Thermo.SpeciesFile); err != nil {
			return nil, nil, err
		}
	}
	return cfg, reg, nil
}
