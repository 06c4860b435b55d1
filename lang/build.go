package lang

import (
	"context"
	"log/slog"
	"strconv"
)

// Build folds a parse tree bottom-up into the final document. Constant
// declarations are processed strictly in source order and contribute
// nothing observable to the document; every mapping at the top level is
// merged into it, last write wins across duplicate keys.
//
// A failed build returns no partial document.
func (s *Session) Build(ctx context.Context, ast *AST) (*Mapping, error) {
	doc := NewMapping()

	for _, node := range ast.Nodes {
		switch node := node.(type) {
		case *ConstDecl:
			v, err := s.resolve(node.Value)
			if err != nil {
				return nil, err
			}

			s.define(node.Name, v)

			s.logger.TraceContext(ctx, "constant defined",
				slog.String("name", node.Name),
				slog.String("kind", v.Kind().String()),
			)

		case *MappingNode:
			m, err := s.buildMapping(node)
			if err != nil {
				return nil, err
			}

			doc.Merge(m)
		}
	}

	s.logger.TraceContext(ctx, "build complete",
		slog.Int("entries", doc.Len()))

	return doc, nil
}

// buildMapping folds each entry into a (key, resolved value) pair.
// Duplicate keys resolve to the last occurrence without reordering.
func (s *Session) buildMapping(node *MappingNode) (*Mapping, error) {
	m := NewMapping()

	for _, entry := range node.Entries {
		v, err := s.resolve(entry.Value)
		if err != nil {
			return nil, err
		}

		m.Set(entry.Key, v)
	}

	return m, nil
}

// resolve reduces a value node to a Value, consulting the constant table
// for bare names and the evaluator for embedded expressions.
func (s *Session) resolve(node ValueNode) (Value, error) {
	switch node := node.(type) {
	case *LiteralNode:
		return literalValue(node.Tok)

	case *NameNode:
		v, lerr := s.lookup(node.Name)
		if lerr != nil {
			return Value{}, lerr.WithPosition(node.pos)
		}

		return v, nil

	case *ArrayNode:
		elems := make([]Value, 0, len(node.Elems))

		for _, lit := range node.Elems {
			v, err := literalValue(lit.Tok)
			if err != nil {
				return Value{}, err
			}

			elems = append(elems, v)
		}

		return ArrayValue(elems...), nil

	case *MappingNode:
		m, err := s.buildMapping(node)
		if err != nil {
			return Value{}, err
		}

		return MapValue(m), nil

	case *ExprNode:
		return s.evalExpr(node)
	}

	return Value{}, ErrSyntax.WithPosition(node.Position()).
		With(slog.String("unexpected", "value node"))
}

// literalValue converts a scalar literal token to its Value.
func literalValue(tok Token) (Value, error) {
	switch tok.Kind {
	case TokenNumber:
		i, err := strconv.ParseInt(tok.Lit, 10, 64)
		if err != nil {
			return Value{}, ErrSyntax.WithPosition(tok.Pos).
				With(slog.String("number out of range", tok.Lit))
		}

		return IntValue(i), nil

	case TokenString:
		return StringValue(tok.Lit), nil

	case TokenBool:
		return BoolValue(tok.Lit == "true"), nil
	}

	return Value{}, ErrSyntax.WithPosition(tok.Pos).
		With(slog.String("unexpected", tok.Kind.String()))
}
