package lang

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// blockComment matches "#| ... |#" regions using the shortest match from
// each opener to the next closer, which may span newlines.
var blockComment = regexp.MustCompile(`(?s)#\|.*?\|#`)

// stripBlockComments removes block comments before tokenization. Each
// stripped region is replaced by the newlines it contained so that line
// numbers reported for later tokens remain accurate.
func stripBlockComments(src string) string {
	return blockComment.ReplaceAllStringFunc(src, func(m string) string {
		return strings.Repeat("\n", strings.Count(m, "\n"))
	})
}

// ParseReader parses a parse tree from an io.Reader.
func ParseReader(ctx context.Context, r io.Reader) (*AST, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(data))
}

// ParseString parses source text into a parse tree. The parse is atomic: a
// malformed input fails as a whole and no partial tree is returned.
//
// Parsing performs no constant resolution or expression evaluation; use a
// Session to build the tree into a document.
func ParseString(_ context.Context, src string) (*AST, error) {
	p := &parser{sc: newScanner([]byte(stripBlockComments(src)))}

	if err := p.next(); err != nil {
		return nil, err
	}

	return p.parseDocument()
}

// parser holds the parser state: a scanner and one token of lookahead.
// The grammar is unambiguous with a single token of lookahead given the
// scanner's keyword-before-identifier priority, so no backtracking occurs.
type parser struct {
	sc  *scanner
	tok Token
}

// next advances the lookahead token.
func (p *parser) next() error {
	tok, err := p.sc.next()
	if err != nil {
		return err
	}

	p.tok = tok

	return nil
}

// expect consumes and returns the current token if it has the given kind.
func (p *parser) expect(kind TokenKind) (Token, error) {
	if p.tok.Kind != kind {
		return Token{}, ErrSyntax.WithPosition(p.tok.Pos).
			With(
				slog.String("expected", kind.String()),
				slog.String("got", p.tok.Kind.String()),
			)
	}

	tok := p.tok

	return tok, p.next()
}

// parseDocument parses: (const_decl | mapping)*.
func (p *parser) parseDocument() (*AST, error) {
	ast := new(AST)

	for p.tok.Kind != TokenEOF {
		switch p.tok.Kind {
		case TokenGlobal:
			decl, err := p.parseConstDecl()
			if err != nil {
				return nil, err
			}

			ast.Nodes = append(ast.Nodes, decl)

		case TokenLBracket:
			mapping, err := p.parseMapping()
			if err != nil {
				return nil, err
			}

			ast.Nodes = append(ast.Nodes, mapping)

		default:
			return nil, ErrSyntax.WithPosition(p.tok.Pos).
				With(
					slog.String("expected", `"global" or "["`),
					slog.String("got", p.tok.Kind.String()),
				)
		}
	}

	return ast, nil
}

// parseConstDecl parses: "global" NAME "=" value ";".
func (p *parser) parseConstDecl() (*ConstDecl, error) {
	pos := p.tok.Pos

	if err := p.next(); err != nil { // consume "global"
		return nil, err
	}

	if p.tok.Kind != TokenName {
		if kw := reservedWord(p.tok); kw != "" {
			return nil, ErrReservedWord.WithPosition(p.tok.Pos).
				With(slog.String("word", kw))
		}

		return nil, ErrSyntax.WithPosition(p.tok.Pos).
			With(
				slog.String("expected", TokenName.String()),
				slog.String("got", p.tok.Kind.String()),
			)
	}

	name := p.tok.Lit
	if err := p.next(); err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenAssign); err != nil {
		return nil, err
	}

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenSemi); err != nil {
		return nil, err
	}

	return &ConstDecl{Name: name, Value: value, pos: pos}, nil
}

// parseMapping parses: "[" (entry ("," entry)*)? "]".
func (p *parser) parseMapping() (*MappingNode, error) {
	pos := p.tok.Pos

	if _, err := p.expect(TokenLBracket); err != nil {
		return nil, err
	}

	mapping := &MappingNode{pos: pos}

	if p.tok.Kind == TokenRBracket {
		return mapping, p.next()
	}

	for {
		entry, err := p.parseEntry()
		if err != nil {
			return nil, err
		}

		mapping.Entries = append(mapping.Entries, entry)

		if p.tok.Kind != TokenComma {
			break
		}

		if err := p.next(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(TokenRBracket); err != nil {
		return nil, err
	}

	return mapping, nil
}

// parseEntry parses: NAME "=>" value.
func (p *parser) parseEntry() (Entry, error) {
	key, err := p.expect(TokenName)
	if err != nil {
		return Entry{}, err
	}

	if _, err := p.expect(TokenArrow); err != nil {
		return Entry{}, err
	}

	value, err := p.parseValue()
	if err != nil {
		return Entry{}, err
	}

	return Entry{Key: key.Lit, Value: value, pos: key.Pos}, nil
}

// parseValue parses: NUMBER | STRING | BOOL | array | mapping | expr | NAME.
func (p *parser) parseValue() (ValueNode, error) {
	switch p.tok.Kind {
	case TokenNumber, TokenString, TokenBool:
		lit := &LiteralNode{Tok: p.tok}

		return lit, p.next()

	case TokenLBracket:
		return p.parseMapping()

	case TokenLParen:
		return p.parseArray()

	case TokenCaret:
		return p.parseExpr()

	case TokenName:
		name := &NameNode{Name: p.tok.Lit, pos: p.tok.Pos}

		return name, p.next()
	}

	return nil, ErrSyntax.WithPosition(p.tok.Pos).
		With(
			slog.String("expected", "value"),
			slog.String("got", p.tok.Kind.String()),
		)
}

// parseArray parses: "(" "list" array_value* ")".
// Only scalar literals are admitted as elements, so arrays can never nest
// containers by construction.
func (p *parser) parseArray() (*ArrayNode, error) {
	pos := p.tok.Pos

	if _, err := p.expect(TokenLParen); err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenList); err != nil {
		return nil, err
	}

	array := &ArrayNode{pos: pos}

	for p.tok.Kind == TokenNumber ||
		p.tok.Kind == TokenString ||
		p.tok.Kind == TokenBool {
		array.Elems = append(array.Elems, LiteralNode{Tok: p.tok})

		if err := p.next(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(TokenRParen); err != nil {
		return nil, err
	}

	return array, nil
}

// parseExpr parses: "^" "{" expr_token* "}".
// The token sequence is captured verbatim for the postfix evaluator.
func (p *parser) parseExpr() (*ExprNode, error) {
	pos := p.tok.Pos

	if _, err := p.expect(TokenCaret); err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenLBrace); err != nil {
		return nil, err
	}

	expr := &ExprNode{pos: pos}

	for p.tok.Kind == TokenNumber ||
		p.tok.Kind == TokenString ||
		p.tok.Kind == TokenBool ||
		p.tok.Kind == TokenName ||
		p.tok.Kind == TokenOperator {
		expr.Tokens = append(expr.Tokens, p.tok)

		if err := p.next(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(TokenRBrace); err != nil {
		return nil, err
	}

	return expr, nil
}

// reservedWord returns the keyword literal if tok is a word the dialect
// reserves, or "" otherwise.
func reservedWord(tok Token) string {
	switch tok.Kind {
	case TokenBool, TokenGlobal, TokenList:
		return tok.Lit
	case TokenOperator:
		if len(tok.Lit) > 1 { // sqrt, len
			return tok.Lit
		}
	}

	return ""
}
