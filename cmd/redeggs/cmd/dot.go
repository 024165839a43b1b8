package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"redeggs/regexlib"
)

var (
	dotNFA bool
	dotRaw bool
	dotOut string
)

var dotCmd = &cobra.Command{
	Use:   "dot <pattern>",
	Short: "Export an automaton of a pattern as Graphviz",
	Long: `Writes the minimal DFA of a pattern in Graphviz DOT format. --nfa
exports the Thompson NFA and --raw the DFA before minimization.

Examples:
  redeggs dot 'a|ab' | dot -Tpng -o a.png
  redeggs dot --nfa -o nfa.dot '(a|b)*abb'`,
	Args: cobra.ExactArgs(1),
	RunE: runDot,
}

func init() {
	rootCmd.AddCommand(dotCmd)
	dotCmd.Flags().BoolVar(&dotNFA, "nfa", false, "export the Thompson NFA")
	dotCmd.Flags().BoolVar(&dotRaw, "raw", false, "export the DFA before minimization")
	dotCmd.Flags().StringVarP(&dotOut, "output", "o", "-", "output file, - for stdout")
}

func runDot(cmd *cobra.Command, args []string) error {
	if dotNFA && dotRaw {
		return fmt.Errorf("--nfa and --raw are mutually exclusive")
	}
	re, err := compile(args[0])
	if err != nil {
		return err
	}

	var graph interface{} = re.DFA()
	switch {
	case dotNFA:
		graph = re.NFA()
	case dotRaw:
		graph = re.RawDFA()
	}

	var w io.Writer = cmd.OutOrStdout()
	if dotOut != "-" {
		f, err := os.Create(dotOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := regexlib.ExportDOT(w, graph); err != nil {
		return err
	}
	if dotOut != "-" {
		logger.Info("DOT written", "file", dotOut)
	}
	return nil
}
