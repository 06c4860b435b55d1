package lang

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/confl-lang/confl/log"
)

// Session owns the constant table for one or more conversions. Constants
// declared while building a document remain defined for every later
// document converted by the same session, so related files can share a
// table — but only when the caller opts in by reusing the session. The
// package-level Convert functions create a fresh session per call and
// never leak constants between documents.
//
// A session is single-writer: concurrent use from multiple goroutines must
// be serialized externally. Independent sessions share no state.
type Session struct {
	consts map[string]Value
	names  []string // declaration order, for suggestions
	logger log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the structured logger used for trace-level diagnostics.
// A zero-value logger (the default) makes all logging a no-op.
func WithLogger(logger log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithConstants preseeds the constant table. Names are defined in sorted
// order so repeated runs behave identically.
func WithConstants(consts map[string]Value) Option {
	return func(s *Session) {
		for _, name := range slices.Sorted(maps.Keys(consts)) {
			s.define(name, consts[name])
		}
	}
}

// NewSession returns a session with an empty constant table.
func NewSession(opts ...Option) *Session {
	s := &Session{consts: make(map[string]Value)}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Convert parses src and builds it into a document, retaining any
// constants it declares for later conversions by the same session.
func (s *Session) Convert(ctx context.Context, src string) (*Mapping, error) {
	ast, err := ParseString(ctx, src)
	if err != nil {
		return nil, err
	}

	s.logger.TraceContext(ctx, "parse complete",
		slog.Int("nodes", len(ast.Nodes)))

	return s.Build(ctx, ast)
}

// Convert runs one isolated conversion: parse src, build the document,
// discard the constant table.
func Convert(
	ctx context.Context,
	src string,
	opts ...Option,
) (*Mapping, error) {
	return NewSession(opts...).Convert(ctx, src)
}

// ConvertReader is Convert reading source text from r.
func ConvertReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Mapping, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return Convert(ctx, string(data), opts...)
}

// Constant returns the value stored under name in the constant table.
func (s *Session) Constant(name string) (Value, bool) {
	v, ok := s.consts[name]

	return v, ok
}

// define stores a fully resolved value under name. Redeclaration
// overwrites the value; the name keeps its original position.
func (s *Session) define(name string, v Value) {
	if _, ok := s.consts[name]; !ok {
		s.names = append(s.names, name)
	}

	s.consts[name] = v
}

// lookup resolves a constant reference. Stored values are already fully
// resolved at declaration time, so lookups never trigger evaluation.
func (s *Session) lookup(name string) (Value, *Error) {
	if v, ok := s.consts[name]; ok {
		return v, nil
	}

	return Value{}, unknownConstant(name, s.names)
}
