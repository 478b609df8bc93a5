package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

const rootLong = "toon reads and writes TOON, a line-oriented, indentation-sensitive " +
	"text format for JSON-equivalent data designed for compact, human- and " +
	"LLM-readable encoding. The two subcommands are a pair: `encode` takes " +
	"JSON in and TOON out, `decode` reverses it."

var rootCmd = &cobra.Command{
	Use:     "toon",
	Short:   "Convert between JSON and TOON",
	Long:    rootLong,
	Example: "  toon encode < data.json > data.toon\n  toon decode < data.toon > data.json",
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("config", "", "path to a YAML config file overriding the codec defaults")
}

// Fail prints err to stderr and exits 1. main uses this instead of
// inlining the same fmt.Fprintln/os.Exit pair itself.
func Fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
