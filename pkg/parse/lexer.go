package parse

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// signalLexer defines the token structure for signal block statements.
// Property lines and change lines share one token set; the grammar in
// ast.go distinguishes them. Quoted strings keep their escapes at the
// lexical level; unquoting happens during value construction so that the
// accepted escape set stays under the parser's control.
var signalLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t]+`},

	// Quoted bus data values with backslash escapes
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},

	// Operators
	{Name: "Arrow", Pattern: `->`},
	{Name: "Equals", Pattern: `=`},

	// Numbers; Float must precede Int so "0.5" is one token
	{Name: "Float", Pattern: `[-+]?[0-9]+\.[0-9]+`},
	{Name: "Int", Pattern: `[-+]?[0-9]+`},

	// The unknown-state marker
	{Name: "Question", Pattern: `\?`},

	// Property keys and the floating-state marker Z
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
})
