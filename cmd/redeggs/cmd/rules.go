package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"redeggs/internal/lexspec"
	"redeggs/internal/scanner"
)

var checkCmd = &cobra.Command{
	Use:   "check <rules-file>",
	Short: "Validate a rule file",
	Long: `Loads a rule file and parses every pattern in it. Prints the number of
rules, or the first problem found.

A rule file holds one rule per line:

  // comment
  ident  = "[a-z][a-z]*";
  ws     = "[ \t\n][ \t\n]*" skip;`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

var scanCmd = &cobra.Command{
	Use:   "scan <rules-file> <input-file>",
	Short: "Split a file into tokens",
	Long: `Compiles a rule file into a scanner and prints the tokens of the input,
one per line as line:column, rule name and lexeme. The longest match wins;
between rules matching the same length the first declared wins. Rules
marked skip consume input silently.`,
	Args: cobra.ExactArgs(2),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scanCmd)
}

func loadRules(path string) (*lexspec.Ruleset, error) {
	return lexspec.Load(path,
		lexspec.WithParserOptions(cfg.ParserOptions()...),
		lexspec.WithLogger(logger),
	)
}

func runCheck(cmd *cobra.Command, args []string) error {
	rs, err := loadRules(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rules\n", args[0], rs.Len())
	return err
}

func runScan(cmd *cobra.Command, args []string) error {
	rs, err := loadRules(args[0])
	if err != nil {
		return err
	}
	sc, err := scanner.New(rs, scanner.WithLogger(logger))
	if err != nil {
		return err
	}
	input, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}

	toks, err := sc.Scan(input)
	out := cmd.OutOrStdout()
	for _, tok := range toks {
		fmt.Fprintf(out, "%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Rule, tok.Lexeme)
	}
	if err != nil {
		return fmt.Errorf("%s:%w", args[1], err)
	}
	logger.Debug("scan finished", "tokens", len(toks))
	return nil
}
