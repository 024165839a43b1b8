package regexlib

/* ----------- Compilation ----------- */

// Regex is a parsed pattern together with the automata built from it.
type Regex struct {
	pattern string
	ast     Node

	nfa    *NFA
	rawDFA *DFA
	dfa    *DFA
}

// Compile parses pattern and builds its Thompson NFA, the subset-construction
// DFA and the minimal DFA.
func Compile(pattern string, opts ...Option) (*Regex, error) {
	/* 1) parsing ---------------------------------------------------------- */
	ast, err := NewParser(opts...).Parse(pattern)
	if err != nil {
		return nil, err
	}

	/* 2) Thompson NFA ----------------------------------------------------- */
	nfa := BuildNFA(ast)

	/* 3) NFA -> DFA -------------------------------------------------------- */
	raw := Determinize(nfa)

	/* 4) minimization ------------------------------------------------------ */
	min := Minimize(raw)

	return &Regex{
		pattern: pattern,
		ast:     ast,
		nfa:     nfa,
		rawDFA:  raw,
		dfa:     min,
	}, nil
}

func MustCompile(pattern string, opts ...Option) *Regex {
	r, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

/* ----------- Matching ------------------------------------------------- */

// MatchString reports whether all of s is in the language of r.
func (r *Regex) MatchString(s string) bool { return r.dfa.Match(s) }

// FindAll returns the leftmost-longest non-overlapping non-empty matches.
func (r *Regex) FindAll(s string) []Match { return r.nfa.FindAll(s) }

/* ----------- Accessors ------------------------------------------------ */

func (r *Regex) String() string { return r.pattern }
func (r *Regex) AST() Node      { return r.ast }
func (r *Regex) NFA() *NFA      { return r.nfa }
func (r *Regex) RawDFA() *DFA   { return r.rawDFA }
func (r *Regex) DFA() *DFA      { return r.dfa }
