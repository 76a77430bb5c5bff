package parser

import (
	"unicode/utf8"

	"github.com/dhamidi/cst/syntax"
)

// token is a lexeme with its trivia accounting: fullStart includes the
// whitespace and comments leading up to the token, start is the first
// byte of the token itself.
type token struct {
	kind      syntax.Kind
	fullStart int
	start     int
	end       int
}

type Lexer struct {
	input []byte
	pos   int
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{input: input}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	return ch
}

// skipTrivia consumes whitespace and comments. The skipped run becomes
// the leading trivia of the next token.
func (l *Lexer) skipTrivia() {
	for {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance()
			continue
		}
		if ch == '/' && l.peekN(1) == '/' {
			l.skipLineComment()
			continue
		}
		if ch == '/' && l.peekN(1) == '*' {
			l.skipBlockComment()
			continue
		}
		return
	}
}

func (l *Lexer) skipLineComment() {
	for l.pos < len(l.input) && l.peek() != '\n' {
		l.advance()
	}
}

func (l *Lexer) skipBlockComment() {
	l.advance()
	l.advance()
	for l.pos < len(l.input) {
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advance()
			l.advance()
			return
		}
		l.advance()
	}
}

// Next returns the next token. At end of input it returns a zero-width
// KindEOF token whose leading span covers any trailing trivia.
func (l *Lexer) Next() token {
	fullStart := l.pos
	l.skipTrivia()
	start := l.pos

	if l.pos >= len(l.input) {
		return token{kind: syntax.KindEOF, fullStart: fullStart, start: start, end: start}
	}

	ch := l.peek()

	if isLetter(ch) {
		return l.scanIdent(fullStart, start)
	}
	if isDigit(ch) {
		return l.scanNumber(fullStart, start)
	}
	if ch == '"' {
		return l.scanString(fullStart, start)
	}

	return l.scanOperator(fullStart, start)
}

func (l *Lexer) scanIdent(fullStart, start int) token {
	for l.pos < len(l.input) && isIdentPart(l.peek()) {
		l.advance()
	}
	return token{kind: syntax.KindIdent, fullStart: fullStart, start: start, end: l.pos}
}

func (l *Lexer) scanNumber(fullStart, start int) token {
	kind := syntax.KindIntLiteral
	for l.pos < len(l.input) && isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		kind = syntax.KindFloatLiteral
		l.advance()
		for l.pos < len(l.input) && isDigit(l.peek()) {
			l.advance()
		}
	}
	return token{kind: kind, fullStart: fullStart, start: start, end: l.pos}
}

func (l *Lexer) scanString(fullStart, start int) token {
	l.advance()
	for l.pos < len(l.input) {
		ch := l.advance()
		if ch == '\\' {
			l.advance()
			continue
		}
		if ch == '"' {
			break
		}
	}
	return token{kind: syntax.KindStringLiteral, fullStart: fullStart, start: start, end: l.pos}
}

func (l *Lexer) scanOperator(fullStart, start int) token {
	ch := l.advance()
	kind := syntax.KindBadToken

	switch ch {
	case '.':
		kind = syntax.KindDot
	case ',':
		kind = syntax.KindComma
	case ';':
		kind = syntax.KindSemicolon
	case '(':
		kind = syntax.KindLParen
	case ')':
		kind = syntax.KindRParen
	case '+':
		kind = syntax.KindPlus
	case '-':
		kind = syntax.KindMinus
	case '*':
		kind = syntax.KindStar
	case '/':
		kind = syntax.KindSlash
	case '!':
		kind = syntax.KindBang
		if l.peek() == '=' {
			l.advance()
			kind = syntax.KindBangEq
		}
	case '=':
		if l.peek() == '=' {
			l.advance()
			kind = syntax.KindEqEq
		}
	case '<':
		kind = syntax.KindLt
		if l.peek() == '=' {
			l.advance()
			kind = syntax.KindLtEq
		}
	case '>':
		kind = syntax.KindGt
		if l.peek() == '=' {
			l.advance()
			kind = syntax.KindGtEq
		}
	case '&':
		if l.peek() == '&' {
			l.advance()
			kind = syntax.KindAmpAmp
		}
	case '|':
		if l.peek() == '|' {
			l.advance()
			kind = syntax.KindPipePipe
		}
	}

	return token{kind: kind, fullStart: fullStart, start: start, end: l.pos}
}

func isLetter(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch >= utf8.RuneSelf
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentPart(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}
