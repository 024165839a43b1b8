package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"redeggs/internal/config"
	"redeggs/regexlib"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse <pattern>",
	Short: "Print the syntax tree of a pattern",
	Long: `Parses a pattern and prints its syntax tree.

Formats:
  tree     indented outline, one node per line
  yaml     the tree as a YAML document
  pattern  the tree written back as a pattern with minimal parentheses

Examples:
  redeggs parse 'a|bc*'
  redeggs parse --format yaml '[^a-c]*'`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "output format: tree, yaml or pattern (default from config)")
}

func runParse(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	n, err := regexlib.NewParser(cfg.ParserOptions()...).Parse(pattern)
	if err != nil {
		return withCaret(pattern, err)
	}

	format := cfg.Output.Format
	if parseFormat != "" {
		format = parseFormat
	}
	out := cmd.OutOrStdout()
	switch format {
	case config.FormatTree:
		return regexlib.Dump(out, n)
	case config.FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(regexlib.Describe(n)); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatPattern:
		s, err := regexlib.Format(n)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
