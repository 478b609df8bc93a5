package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	toon "github.com/cwbudde/go-toon"
)

var (
	decodeDelimiter  string
	decodeStrict     bool
	decodeOutputFile string
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Convert TOON to JSON",
	Long: `Read a TOON document (from a file, or stdin if no file is given) and
write its JSON equivalent to stdout.

Examples:
  toon decode data.toon
  cat data.toon | toon decode
  toon decode --strict=false data.toon`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringVar(&decodeDelimiter, "delimiter", "comma", "document-level delimiter: comma, tab, or pipe")
	decodeCmd.Flags().BoolVar(&decodeStrict, "strict", true, "reject malformed or ambiguous input instead of best-effort parsing")
	decodeCmd.Flags().StringVarP(&decodeOutputFile, "output", "o", "", "write to this file instead of stdout")
}

func runDecode(cmd *cobra.Command, args []string) error {
	src, err := readInput(args)
	if err != nil {
		return err
	}

	configPath, _ := cmd.Flags().GetString("config")
	opts, err := loadConfigOptions(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("delimiter") {
		delim, err := parseDelimiterName(decodeDelimiter)
		if err != nil {
			return err
		}
		opts = append(opts, toon.WithDelimiter(delim))
	}
	if cmd.Flags().Changed("strict") {
		opts = append(opts, toon.WithStrict(decodeStrict))
	}

	tree, err := toon.Decode(string(src), opts...)
	if err != nil {
		if de, ok := toon.AsDecodeError(err); ok {
			return fmt.Errorf("%s", de.Format(colorEnabled()))
		}
		return err
	}

	raw, err := json.Marshal(valueToJSON(tree))
	if err != nil {
		return fmt.Errorf("rendering JSON: %w", err)
	}

	out := pretty.Pretty(raw)
	return writeOutput(decodeOutputFile, string(out))
}

func colorEnabled() bool {
	return decodeOutputFile == "" && isatty.IsTerminal(os.Stderr.Fd())
}
