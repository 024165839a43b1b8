package lexspec

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// ErrDuplicate is wrapped by the RuleError of a rule that reuses a name.
var ErrDuplicate = errors.New("duplicate rule")

// RuleError reports a rule whose declaration is valid syntax but cannot be
// used, most often because its pattern does not parse.
type RuleError struct {
	Pos  lexer.Position
	Rule string
	Err  error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: rule %s: %v", e.Pos, e.Rule, e.Err)
}

func (e *RuleError) Unwrap() error { return e.Err }
