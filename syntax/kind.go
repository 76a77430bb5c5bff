package syntax

type Kind int

const (
	// Tokens
	KindIdent Kind = iota
	KindIntLiteral
	KindFloatLiteral
	KindStringLiteral
	KindDot
	KindComma
	KindSemicolon
	KindLParen
	KindRParen
	KindPlus
	KindMinus
	KindStar
	KindSlash
	KindBang
	KindEqEq
	KindBangEq
	KindLt
	KindLtEq
	KindGt
	KindGtEq
	KindAmpAmp
	KindPipePipe
	KindBadToken

	// Placeholders
	KindEOF
	KindMissing

	// List group
	KindList

	// Composites
	KindSourceFile
	KindExprStmt
	KindArgument
	KindBinaryExpr
	KindUnaryExpr
	KindCallExpr
	KindMemberExpr
	KindParenExpr
)

var kindNames = map[Kind]string{
	KindIdent:         "Ident",
	KindIntLiteral:    "IntLiteral",
	KindFloatLiteral:  "FloatLiteral",
	KindStringLiteral: "StringLiteral",
	KindDot:           "Dot",
	KindComma:         "Comma",
	KindSemicolon:     "Semicolon",
	KindLParen:        "LParen",
	KindRParen:        "RParen",
	KindPlus:          "Plus",
	KindMinus:         "Minus",
	KindStar:          "Star",
	KindSlash:         "Slash",
	KindBang:          "Bang",
	KindEqEq:          "EqEq",
	KindBangEq:        "BangEq",
	KindLt:            "Lt",
	KindLtEq:          "LtEq",
	KindGt:            "Gt",
	KindGtEq:          "GtEq",
	KindAmpAmp:        "AmpAmp",
	KindPipePipe:      "PipePipe",
	KindBadToken:      "BadToken",
	KindEOF:           "EOF",
	KindMissing:       "Missing",
	KindList:          "List",
	KindSourceFile:    "SourceFile",
	KindExprStmt:      "ExprStmt",
	KindArgument:      "Argument",
	KindBinaryExpr:    "BinaryExpr",
	KindUnaryExpr:     "UnaryExpr",
	KindCallExpr:      "CallExpr",
	KindMemberExpr:    "MemberExpr",
	KindParenExpr:     "ParenExpr",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsToken reports whether k is a lexical token kind. Placeholder kinds
// (EOF, Missing) are leaves too, but not tokens.
func (k Kind) IsToken() bool {
	return k >= KindIdent && k < KindEOF
}

func (k Kind) IsPlaceholder() bool {
	return k == KindEOF || k == KindMissing
}

func (k Kind) IsList() bool {
	return k == KindList
}
