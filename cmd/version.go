package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// 编译时通过 -ldflags "-X kilngas/cmd.Version=..." 注入
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func GetVersion() string {
	return fmt.Sprintf("Version: %s\nGitCommit: %s\nBuildTime: %s\nGoVersion: %s",
		Version, GitCommit, BuildTime, runtime.Version())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "version show kilngas version info.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), GetVersion())
		},
	}
}
