package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var matchFind bool

var matchCmd = &cobra.Command{
	Use:   "match <pattern> <text>...",
	Short: "Test texts against a pattern",
	Long: `Reports for each text whether the whole text is in the language of
the pattern. With --find, lists the leftmost-longest non-empty matches
inside each text instead, as byte offsets.

Examples:
  redeggs match '(ab)*' abab aba
  redeggs match --find '[0-9][0-9]*' 'a1b22c333'`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.Flags().BoolVar(&matchFind, "find", false, "list matches inside each text")
}

func runMatch(cmd *cobra.Command, args []string) error {
	re, err := compile(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	for _, text := range args[1:] {
		if !matchFind {
			verdict := "no match"
			if re.MatchString(text) {
				verdict = "match"
			}
			fmt.Fprintf(out, "%q\t%s\n", text, verdict)
			continue
		}

		ms := re.FindAll(text)
		fmt.Fprintf(out, "%q\t%d matches\n", text, len(ms))
		for _, m := range ms {
			fmt.Fprintf(out, "  %d-%d\t%q\n", m.Start, m.End, text[m.Start:m.End])
		}
	}
	return nil
}
