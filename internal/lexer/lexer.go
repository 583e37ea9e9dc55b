package lexer

import (
	"strconv"
	"unicode/utf8"

	"lox/internal/diag"
	"lox/internal/tokens"
)

// Lexer turns source text into tokens
type Lexer struct {
	source  string
	start   int
	current int
	line    int

	diags  *diag.Collector
	tokens []tokens.Token
}

// New creates a lexer that reports into diags
func New(source string, diags *diag.Collector) *Lexer {
	return &Lexer{
		source: source,
		line:   1,
		diags:  diags,
	}
}

// Scan consumes the whole source and returns its tokens terminated by EOF.
// Errors are reported to the collector and scanning goes on.
func (l *Lexer) Scan() []tokens.Token {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.tokens = append(l.tokens, tokens.Token{
		Type: tokens.EOF,
		Line: l.line,
	})
	return l.tokens
}

func (l *Lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(tokens.LEFT_PAREN, nil)
	case ')':
		l.emit(tokens.RIGHT_PAREN, nil)
	case '{':
		l.emit(tokens.LEFT_BRACE, nil)
	case '}':
		l.emit(tokens.RIGHT_BRACE, nil)
	case ',':
		l.emit(tokens.COMMA, nil)
	case '.':
		l.emit(tokens.DOT, nil)
	case '-':
		l.emit(tokens.MINUS, nil)
	case '+':
		l.emit(tokens.PLUS, nil)
	case ';':
		l.emit(tokens.SEMICOLON, nil)
	case '*':
		l.emit(tokens.STAR, nil)
	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else {
			l.emit(tokens.SLASH, nil)
		}
	case '!':
		l.emitOneOrTwo('=', tokens.BANG_EQUAL, tokens.BANG)
	case '=':
		l.emitOneOrTwo('=', tokens.EQUAL_EQUAL, tokens.EQUAL)
	case '<':
		l.emitOneOrTwo('=', tokens.LESS_EQUAL, tokens.LESS)
	case '>':
		l.emitOneOrTwo('=', tokens.GREATER_EQUAL, tokens.GREATER)

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		l.line++

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			if c >= utf8.RuneSelf {
				// one report per character, not per byte
				_, size := utf8.DecodeRuneInString(l.source[l.start:])
				l.current = l.start + size
			}
			l.diags.Error(diag.Syntax, l.line, errUnexpectedChar)
		}
	}
}

func (l *Lexer) emitOneOrTwo(next byte, two, one tokens.TokenType) {
	if l.match(next) {
		l.emit(two, nil)
	} else {
		l.emit(one, nil)
	}
}

func (l *Lexer) string() {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.diags.Error(diag.Syntax, l.line, errUnterminatedString)
		return
	}

	// Consume ending "
	l.advance()

	l.emit(tokens.STRING, l.source[l.start+1:l.current-1])
}

func (l *Lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	// A trailing '.' is left for the next token
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	literal, _ := strconv.ParseFloat(l.source[l.start:l.current], 64)

	l.emit(tokens.NUMBER, literal)
}

func (l *Lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	identifier := l.source[l.start:l.current]

	tokenType, ok := tokens.Keywords[identifier]
	if !ok {
		tokenType = tokens.IDENTIFIER
	}

	l.emit(tokenType, nil)
}

func (l *Lexer) advance() byte {
	current := l.source[l.current]
	l.current++
	return current
}

func (l *Lexer) match(c byte) bool {
	if l.isAtEnd() || l.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *Lexer) emit(token tokens.TokenType, literal interface{}) {
	l.tokens = append(l.tokens, tokens.Token{
		Type:    token,
		Lexeme:  l.source[l.start:l.current],
		Literal: literal,
		Line:    l.line,
	})
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// Lexer errors
const (
	errUnexpectedChar     = "Unexpected character."
	errUnterminatedString = "Unterminated string."
)
