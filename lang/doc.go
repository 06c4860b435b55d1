// Package lang implements the confl configuration dialect: a scanner and
// recursive-descent parser for its fixed grammar, a bottom-up value builder
// that folds parse trees into ordered value documents, and the postfix
// expression evaluator embedded in the dialect.
//
// A conversion is a synchronous, single-pass batch transformation:
//
//	doc, err := lang.Convert(ctx, src)
//
// parses src, resolves "global" constant declarations strictly in source
// order, evaluates each "^{ ... }" expression against the constant table,
// and returns the top-level document as an insertion-ordered *Mapping
// ready for YAML or JSON encoding. A conversion either completes or fails
// with a terminal error; no partial document is ever produced.
//
// The grammar, informally:
//
//	document    := (const_decl | mapping)*
//	const_decl  := "global" NAME "=" value ";"
//	mapping     := "[" (entry ("," entry)*)? "]"
//	entry       := NAME "=>" value
//	array       := "(" "list" array_value* ")"
//	value       := NUMBER | STRING | BOOL | array | mapping | expr | NAME
//	expr        := "^" "{" expr_token* "}"
//
// Line comments run from "//" to end of line; block comments are delimited
// by "#|" and "|#" and may span lines.
//
// Constants must be declared before use and may hold any value kind,
// including mappings and arrays. Use a Session to share a constant table
// across multiple documents; the package-level Convert functions isolate
// each conversion.
package lang
