package lexspec

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// file is the syntax of a rule file:
//
//	ident   = "a|b*";
//	ws      = `[ \t][ \t]*` skip;
//
// Comments run from // to the end of the line.
type file struct {
	Rules []*ruleDecl `parser:"@@*"`
}

type ruleDecl struct {
	Pos lexer.Position

	Name    string `parser:"@Ident '='"`
	Pattern string `parser:"@(String | RawString)"`
	Skip    bool   `parser:"@'skip'? ';'"`
}

var parser = participle.MustBuild[file](
	participle.Unquote("String", "RawString"),
)
