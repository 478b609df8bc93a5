package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	toon "github.com/cwbudde/go-toon"
)

var (
	encodeIndent     int
	encodeDelimiter  string
	encodeLenMarker  bool
	encodeOutputFile string
)

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Convert JSON to TOON",
	Long: `Read a JSON document (from a file, or stdin if no file is given) and
write its TOON encoding to stdout.

Examples:
  toon encode data.json
  cat data.json | toon encode
  toon encode --delimiter pipe --length-marker data.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().IntVar(&encodeIndent, "indent", 2, "spaces per structural level (1-8)")
	encodeCmd.Flags().StringVar(&encodeDelimiter, "delimiter", "comma", "array delimiter: comma, tab, or pipe")
	encodeCmd.Flags().BoolVar(&encodeLenMarker, "length-marker", false, "prefix array header counts with '#'")
	encodeCmd.Flags().StringVarP(&encodeOutputFile, "output", "o", "", "write to this file instead of stdout")
}

func runEncode(cmd *cobra.Command, args []string) error {
	src, err := readInput(args)
	if err != nil {
		return err
	}
	if !gjson.Valid(string(src)) {
		return fmt.Errorf("invalid JSON input")
	}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	tree := jsonToValue(gjson.ParseBytes(src))
	text, err := toon.Encode(tree, opts...)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return writeOutput(encodeOutputFile, text+"\n")
}

func resolveOptions(cmd *cobra.Command) ([]toon.Option, error) {
	configPath, _ := cmd.Flags().GetString("config")
	opts, err := loadConfigOptions(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("indent") {
		opts = append(opts, toon.WithIndentSize(encodeIndent))
	}
	if cmd.Flags().Changed("delimiter") {
		delim, err := parseDelimiterName(encodeDelimiter)
		if err != nil {
			return nil, err
		}
		opts = append(opts, toon.WithDelimiter(delim))
	}
	if cmd.Flags().Changed("length-marker") {
		opts = append(opts, toon.WithLengthMarker(encodeLenMarker))
	}
	return opts, nil
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func writeOutput(path, text string) error {
	if path == "" {
		fmt.Print(text)
		return nil
	}
	return os.WriteFile(path, []byte(text), 0o644)
}
