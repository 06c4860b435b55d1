package lang

import (
	"log/slog"
)

// TokenKind identifies the lexical class of a token.
type TokenKind int

const (
	TokenEOF TokenKind = iota

	TokenName     // bare identifier (ASCII letters)
	TokenNumber   // non-negative integer literal
	TokenString   // single-quoted string literal
	TokenBool     // true | false
	TokenOperator // + - * / sqrt len

	TokenGlobal // keyword "global"
	TokenList   // keyword "list"

	TokenAssign   // =
	TokenArrow    // =>
	TokenComma    // ,
	TokenSemi     // ;
	TokenCaret    // ^
	TokenLBracket // [
	TokenRBracket // ]
	TokenLParen   // (
	TokenRParen   // )
	TokenLBrace   // {
	TokenRBrace   // }
)

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenName:
		return "name"
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenBool:
		return "boolean"
	case TokenOperator:
		return "operator"
	case TokenGlobal:
		return `"global"`
	case TokenList:
		return `"list"`
	case TokenAssign:
		return `"="`
	case TokenArrow:
		return `"=>"`
	case TokenComma:
		return `","`
	case TokenSemi:
		return `";"`
	case TokenCaret:
		return `"^"`
	case TokenLBracket:
		return `"["`
	case TokenRBracket:
		return `"]"`
	case TokenLParen:
		return `"("`
	case TokenRParen:
		return `")"`
	case TokenLBrace:
		return `"{"`
	case TokenRBrace:
		return `"}"`
	default:
		return "unknown"
	}
}

// Position locates a token or error within the source text.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Token is a single lexical unit of the dialect.
type Token struct {
	Kind TokenKind
	Lit  string // literal text; string tokens hold the unquoted contents
	Pos  Position
}

// scanner tokenizes dialect source text.
// Keywords take priority over identifiers: "true", "false", "global", and
// "list" never lex as names, and "sqrt"/"len" always lex as operators.
type scanner struct {
	input []byte
	pos   int
	line  int
	col   int
}

func newScanner(input []byte) *scanner {
	return &scanner{input: input, line: 1, col: 1}
}

// next returns the next token, skipping whitespace and line comments.
func (s *scanner) next() (Token, error) {
	s.skipSpaceAndComments()

	pos := s.position()

	if s.eof() {
		return Token{Kind: TokenEOF, Pos: pos}, nil
	}

	ch := s.peek()

	switch {
	case isLetter(ch):
		return s.scanWord(pos), nil
	case isDigit(ch):
		return s.scanNumber(pos), nil
	case ch == '\'':
		return s.scanString(pos)
	}

	s.advance()

	switch ch {
	case '+', '-', '*', '/':
		return Token{Kind: TokenOperator, Lit: string(ch), Pos: pos}, nil
	case '=':
		if s.peek() == '>' {
			s.advance()

			return Token{Kind: TokenArrow, Lit: "=>", Pos: pos}, nil
		}

		return Token{Kind: TokenAssign, Lit: "=", Pos: pos}, nil
	case ',':
		return Token{Kind: TokenComma, Lit: ",", Pos: pos}, nil
	case ';':
		return Token{Kind: TokenSemi, Lit: ";", Pos: pos}, nil
	case '^':
		return Token{Kind: TokenCaret, Lit: "^", Pos: pos}, nil
	case '[':
		return Token{Kind: TokenLBracket, Lit: "[", Pos: pos}, nil
	case ']':
		return Token{Kind: TokenRBracket, Lit: "]", Pos: pos}, nil
	case '(':
		return Token{Kind: TokenLParen, Lit: "(", Pos: pos}, nil
	case ')':
		return Token{Kind: TokenRParen, Lit: ")", Pos: pos}, nil
	case '{':
		return Token{Kind: TokenLBrace, Lit: "{", Pos: pos}, nil
	case '}':
		return Token{Kind: TokenRBrace, Lit: "}", Pos: pos}, nil
	}

	return Token{}, ErrSyntax.WithPosition(pos).
		With(slog.String("unexpected", string(ch)))
}

// scanWord scans a run of letters and classifies keywords.
func (s *scanner) scanWord(pos Position) Token {
	start := s.pos
	for !s.eof() && isLetter(s.peek()) {
		s.advance()
	}

	lit := string(s.input[start:s.pos])

	switch lit {
	case "true", "false":
		return Token{Kind: TokenBool, Lit: lit, Pos: pos}
	case "global":
		return Token{Kind: TokenGlobal, Lit: lit, Pos: pos}
	case "list":
		return Token{Kind: TokenList, Lit: lit, Pos: pos}
	case "sqrt", "len":
		return Token{Kind: TokenOperator, Lit: lit, Pos: pos}
	}

	return Token{Kind: TokenName, Lit: lit, Pos: pos}
}

func (s *scanner) scanNumber(pos Position) Token {
	start := s.pos
	for !s.eof() && isDigit(s.peek()) {
		s.advance()
	}

	return Token{Kind: TokenNumber, Lit: string(s.input[start:s.pos]), Pos: pos}
}

// scanString scans a single-quoted string literal. The contents are taken
// verbatim with no escape processing; the literal may span multiple lines.
func (s *scanner) scanString(pos Position) (Token, error) {
	s.advance() // opening quote

	start := s.pos

	for !s.eof() {
		if s.peek() == '\'' {
			lit := string(s.input[start:s.pos])
			s.advance() // closing quote

			return Token{Kind: TokenString, Lit: lit, Pos: pos}, nil
		}

		s.advance()
	}

	return Token{}, ErrSyntax.WithPosition(pos).
		With(slog.String("unexpected", "unterminated string"))
}

// Helper methods

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}

	return s.input[s.pos]
}

func (s *scanner) peekAt(n int) byte {
	if s.pos+n >= len(s.input) {
		return 0
	}

	return s.input[s.pos+n]
}

func (s *scanner) advance() {
	if s.eof() {
		return
	}

	if s.input[s.pos] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	s.pos++
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) position() Position {
	return Position{
		Offset: s.pos,
		Line:   s.line,
		Column: s.col,
	}
}

func (s *scanner) skipSpaceAndComments() {
	for !s.eof() {
		ch := s.peek()

		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			s.advance()

			continue
		}

		// Line comment
		if ch == '/' && s.peekAt(1) == '/' {
			for !s.eof() && s.peek() != '\n' {
				s.advance()
			}

			continue
		}

		break
	}
}

// Character classification
//
// The dialect restricts names to ASCII letters and numbers to ASCII digits.

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
