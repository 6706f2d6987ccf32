package parse

import (
	"github.com/alecthomas/participle/v2"
)

// statement is one body line of a signal block: either a change line
// (<time> -> <value>) or a property line (<key> = <value>).
type statement struct {
	Change *changeStmt `parser:"  @@"`
	Prop   *propStmt   `parser:"| @@"`
}

// changeStmt declares the value a signal takes on at a given time
type changeStmt struct {
	Time  int       `parser:"@Int Arrow"`
	Value valueExpr `parser:"@@"`
}

// propStmt assigns a value to a block property
type propStmt struct {
	Key   string    `parser:"@Ident Equals"`
	Value valueExpr `parser:"@@"`
}

// valueExpr captures any token that can appear on the right-hand side of
// a signal statement. It is deliberately permissive: semantic validation
// against the enclosing signal kind happens in the builder, so that a
// kind mismatch is reported as such instead of a generic parse failure.
type valueExpr struct {
	Str      *string  `parser:"  @String"`
	Float    *float64 `parser:"| @Float"`
	Int      *int     `parser:"| @Int"`
	Question bool     `parser:"| @Question"`
	Ident    *string  `parser:"| @Ident"`
}

// signalParser parses a single signal block statement
var signalParser = participle.MustBuild[statement](
	participle.Lexer(signalLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)
