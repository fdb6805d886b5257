package token

// Kind is the category of a script token.
type Kind uint8

const (
	// Invalid marks an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the stream.
	EOF

	Ident
	Keyword
	NumberLit
	StringLit

	Assign     // =
	CompoundOp // += -= *= /= &=
	Operator   // any other operator
	Dot        // .
	Comma      // ,
	Semicolon  // ;
	LParen     // (
	RParen     // )
	LBrace     // {
	RBrace     // }
	LBracket   // [
	RBracket   // ]

	Whitespace
	LineComment   // // ...
	BlockComment  // /* ... */
	MarkupComment // <!--- ... --->
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Ident:         "Ident",
	Keyword:       "Keyword",
	NumberLit:     "NumberLit",
	StringLit:     "StringLit",
	Assign:        "Assign",
	CompoundOp:    "CompoundOp",
	Operator:      "Operator",
	Dot:           "Dot",
	Comma:         "Comma",
	Semicolon:     "Semicolon",
	LParen:        "LParen",
	RParen:        "RParen",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	Whitespace:    "Whitespace",
	LineComment:   "LineComment",
	BlockComment:  "BlockComment",
	MarkupComment: "MarkupComment",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
