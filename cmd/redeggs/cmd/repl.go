package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Try patterns interactively",
	Long: `Reads a pattern, then a text, and prints the matches of the pattern in
the text. Repeats until an empty pattern or end of input. Malformed
patterns are reported and the loop continues.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	for {
		fmt.Fprint(out, "pattern> ")
		if !in.Scan() || in.Text() == "" {
			break
		}
		re, err := compile(in.Text())
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}

		fmt.Fprint(out, "text> ")
		if !in.Scan() {
			break
		}
		text := in.Text()
		for _, m := range re.FindAll(text) {
			fmt.Fprintf(out, "%d-%d\t%q\n", m.Start, m.End, text[m.Start:m.End])
		}
	}
	fmt.Fprintln(out)
	return in.Err()
}
