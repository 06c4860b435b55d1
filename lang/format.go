package lang

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// EncodeYAML writes the document as YAML, preserving entry order. The core
// makes no formatting decisions beyond the value model; rendering follows
// the encoder's defaults.
func EncodeYAML(ctx context.Context, w io.Writer, doc *Mapping) error {
	if doc.Len() == 0 {
		_, err := fmt.Fprintln(w, "{}")

		return err
	}

	data, err := yaml.MarshalContext(ctx, doc)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

// EncodeJSON writes the document as JSON, preserving entry order.
// A positive indent selects multi-line output.
func EncodeJSON(w io.Writer, doc *Mapping, indent int) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	if indent > 0 {
		var buf bytes.Buffer

		err = json.Indent(&buf, data, "", strings.Repeat(" ", indent))
		if err != nil {
			return err
		}

		data = buf.Bytes()
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// Format writes the parse tree back out as canonical dialect text:
// one constant declaration per line, mappings opened across lines with the
// given indent width, arrays and expressions on a single line.
// Formatting a tree and reparsing the output yields an equal tree.
func (ast *AST) Format(w io.Writer, indent int) error {
	for i, node := range ast.Nodes {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		switch node := node.(type) {
		case *ConstDecl:
			if _, err := fmt.Fprintf(w, "global %s = ", node.Name); err != nil {
				return err
			}

			if err := formatValue(w, node.Value, indent, 0); err != nil {
				return err
			}

			if _, err := fmt.Fprintln(w, ";"); err != nil {
				return err
			}

		case *MappingNode:
			if err := formatMapping(w, node, indent, 0); err != nil {
				return err
			}

			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}

	return nil
}

func formatMapping(w io.Writer, node *MappingNode, indent, depth int) error {
	if len(node.Entries) == 0 {
		_, err := fmt.Fprint(w, "[]")

		return err
	}

	if _, err := fmt.Fprintln(w, "["); err != nil {
		return err
	}

	pad := strings.Repeat(" ", (depth+1)*indent)

	for i, entry := range node.Entries {
		if _, err := fmt.Fprintf(w, "%s%s => ", pad, entry.Key); err != nil {
			return err
		}

		if err := formatValue(w, entry.Value, indent, depth+1); err != nil {
			return err
		}

		if i < len(node.Entries)-1 {
			if _, err := fmt.Fprint(w, ","); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, strings.Repeat(" ", depth*indent), "]")

	return err
}

func formatValue(w io.Writer, node ValueNode, indent, depth int) error {
	switch node := node.(type) {
	case *LiteralNode:
		_, err := fmt.Fprint(w, formatToken(node.Tok))

		return err

	case *NameNode:
		_, err := fmt.Fprint(w, node.Name)

		return err

	case *ArrayNode:
		if _, err := fmt.Fprint(w, "(list"); err != nil {
			return err
		}

		for _, elem := range node.Elems {
			if _, err := fmt.Fprint(w, " ", formatToken(elem.Tok)); err != nil {
				return err
			}
		}

		_, err := fmt.Fprint(w, ")")

		return err

	case *ExprNode:
		parts := make([]string, 0, len(node.Tokens))
		for _, tok := range node.Tokens {
			parts = append(parts, formatToken(tok))
		}

		_, err := fmt.Fprintf(w, "^{%s}", strings.Join(parts, " "))

		return err

	case *MappingNode:
		return formatMapping(w, node, indent, depth)
	}

	return nil
}

// formatToken renders a token as dialect source text, requoting strings.
func formatToken(tok Token) string {
	if tok.Kind == TokenString {
		return "'" + tok.Lit + "'"
	}

	return tok.Lit
}
