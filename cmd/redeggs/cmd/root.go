package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"redeggs/internal/config"
	"redeggs/regexlib"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "redeggs",
	Short: "Regular expression front end for lexer generators",
	Long: `redeggs parses regular expressions into syntax trees, builds automata
from them and scans input with rule files of named patterns.

Pattern syntax:
  ab      concatenation        a|b     alternation
  a*      zero or more         (a)     grouping
  [a-c]   character class      [^a-c]  negated class
  ε       the empty word       ∅       the empty language (whole pattern only)

The characters ( ) [ ] * | $ are reserved and cannot be matched.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c := config.Default()
		if cfgFile != "" {
			var err error
			if c, err = config.Load(cfgFile); err != nil {
				return err
			}
		}
		cfg = c
		logger = cfg.Logger(cmd.ErrOrStderr(), verbose)
		logger.Debug("config loaded", "file", cfgFile)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
}

// compile parses pattern with the configured parser options.
func compile(pattern string) (*regexlib.Regex, error) {
	re, err := regexlib.Compile(pattern, cfg.ParserOptions()...)
	if err != nil {
		return nil, withCaret(pattern, err)
	}
	logger.Debug("pattern compiled",
		"pattern", pattern,
		"nfa_states", re.NFA().Len(),
		"dfa_states", re.RawDFA().Len(),
		"min_dfa_states", re.DFA().Len(),
	)
	return re, nil
}

// caretError shows the pattern with a caret under the offending position.
type caretError struct {
	pattern string
	err     *regexlib.ParseError
}

func (e *caretError) Error() string {
	return fmt.Sprintf("%v\n  %s\n  %s^", e.err, e.pattern, strings.Repeat(" ", e.err.Offset))
}

func (e *caretError) Unwrap() error { return e.err }

func withCaret(pattern string, err error) error {
	var perr *regexlib.ParseError
	if errors.As(err, &perr) {
		return &caretError{pattern: pattern, err: perr}
	}
	return err
}
