package tape

import (
	"strings"
	"unicode"
)

// Lexer tokenizes .tape file input
type Lexer struct {
	input   string
	pos     int  // current position
	nextPos int  // next position
	ch      byte // current character
	line    int  // line of ch
	column  int  // column of ch
}

// New creates a new Lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// readChar reads the next character and updates position tracking
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.nextPos >= len(l.input) {
		l.ch = 0 // EOF
	} else {
		l.ch = l.input[l.nextPos]
	}

	l.pos = l.nextPos
	l.nextPos++
	l.column++
}

// peekChar returns the next character without consuming it
func (l *Lexer) peekChar() byte {
	if l.nextPos >= len(l.input) {
		return 0
	}
	return l.input[l.nextPos]
}

// skipWhitespace skips spaces and tabs (not newlines)
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

// skipComment skips a comment line (from # to end of line)
func (l *Lexer) skipComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// readString reads a quoted string. ok is false when the line ends first.
func (l *Lexer) readString(quote byte) (s string, ok bool) {
	var sb strings.Builder
	l.readChar() // skip opening quote

	for l.ch != quote {
		if l.ch == 0 || l.ch == '\n' {
			return sb.String(), false
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 0, '\n':
				return sb.String(), false
			default:
				sb.WriteByte(l.ch)
			}
		} else {
			sb.WriteByte(l.ch)
		}
		l.readChar()
	}

	l.readChar() // skip closing quote
	return sb.String(), true
}

// readWord reads an identifier, keyword, app name or key name
func (l *Lexer) readWord() string {
	start := l.pos
	for isWordChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads an optionally signed decimal literal
func (l *Lexer) readNumber() string {
	start := l.pos
	if l.ch == '-' || l.ch == '+' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.pos]
}

// NextToken returns the next token in the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	tok := Token{Line: l.line, Column: l.column}

	switch {
	case l.ch == 0:
		tok.Type = TOKEN_EOF

	case l.ch == '\n':
		tok.Type = TOKEN_NEWLINE
		tok.Literal = "\n"
		l.readChar()

	case l.ch == '#':
		l.skipComment()
		return l.NextToken()

	case l.ch == '"' || l.ch == '\'' || l.ch == '`':
		s, ok := l.readString(l.ch)
		tok.Type = TOKEN_STRING
		tok.Literal = s
		if !ok {
			tok.Type = TOKEN_ILLEGAL
			tok.Literal = "unterminated string"
		}

	case isDigit(l.ch), (l.ch == '-' || l.ch == '+') && isDigit(l.peekChar()):
		tok.Type = TOKEN_NUMBER
		tok.Literal = l.readNumber()
		if isWordChar(l.ch) {
			// 12px, 3x: glue the rest on so the parser sees one bad argument.
			tok.Type = TOKEN_IDENTIFIER
			tok.Literal += l.readWord()
		}

	case isWordChar(l.ch):
		tok.Literal = l.readWord()
		tok.Type = LookupKeyword(tok.Literal)

	default:
		tok.Type = TOKEN_ILLEGAL
		tok.Literal = string(l.ch)
		l.readChar()
	}

	return tok
}

// isDigit returns true if ch is a digit
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isWordChar returns true if ch is valid in a bare word. Key names such as
// ctrl+w and app names such as about-me are single words.
func isWordChar(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || isDigit(ch) || ch == '_' || ch == '-' || ch == '+' || ch == '.'
}

// Tokenize returns all tokens from the input (useful for testing)
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			break
		}
	}
	return tokens
}
