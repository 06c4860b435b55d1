package lang

// AST is the parse tree produced from one source text. It holds the
// top-level sequence of constant declarations and mappings in source order.
// An AST is inert: nothing is resolved or evaluated until a Session builds
// it into a document.
type AST struct {
	Nodes []Node
}

// Node is a top-level parse tree node: either *ConstDecl or *MappingNode.
type Node interface {
	Position() Position

	node()
}

// ValueNode is any parse tree node that can appear on the right-hand side
// of a constant declaration or a mapping entry.
type ValueNode interface {
	Position() Position

	valueNode()
}

// ConstDecl represents: "global" NAME "=" value ";".
type ConstDecl struct {
	Name  string
	Value ValueNode
	pos   Position
}

func (d *ConstDecl) Position() Position { return d.pos }
func (d *ConstDecl) node()              {}

// MappingNode represents: "[" (entry ("," entry)*)? "]".
// It appears both at the top level and nested as a value.
type MappingNode struct {
	Entries []Entry
	pos     Position
}

func (m *MappingNode) Position() Position { return m.pos }
func (m *MappingNode) node()              {}
func (m *MappingNode) valueNode()         {}

// Entry represents one mapping entry: NAME "=>" value.
type Entry struct {
	Key   string
	Value ValueNode
	pos   Position
}

func (e Entry) Position() Position { return e.pos }

// LiteralNode represents a scalar literal token: number, string, or boolean.
type LiteralNode struct {
	Tok Token
}

func (l *LiteralNode) Position() Position { return l.Tok.Pos }
func (l *LiteralNode) valueNode()         {}

// NameNode represents a bare constant reference.
type NameNode struct {
	Name string
	pos  Position
}

func (n *NameNode) Position() Position { return n.pos }
func (n *NameNode) valueNode()         {}

// ArrayNode represents: "(" "list" array_value* ")".
// The grammar admits only scalar literal elements.
type ArrayNode struct {
	Elems []LiteralNode
	pos   Position
}

func (a *ArrayNode) Position() Position { return a.pos }
func (a *ArrayNode) valueNode()         {}

// ExprNode represents a postfix expression: "^" "{" expr_token* "}".
// The token sequence is captured verbatim and reduced by the evaluator
// when the tree is built into a document.
type ExprNode struct {
	Tokens []Token
	pos    Position
}

func (x *ExprNode) Position() Position { return x.pos }
func (x *ExprNode) valueNode()         {}
