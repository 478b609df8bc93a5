package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display detailed version information including commit hash, build date, and the Go toolchain used to build this binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(versionString())
	},
}

func versionString() string {
	return fmt.Sprintf(
		"toon version %s\nGit Commit: %s\nBuild Date: %s\nGo: %s",
		Version, GitCommit, BuildDate, runtime.Version(),
	)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
