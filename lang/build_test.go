package lang

import (
	"context"
	"errors"
	"testing"
)

func TestConvert_Document(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, doc *Mapping)
	}{
		{
			name:  "empty input yields empty document",
			input: "",
			check: func(t *testing.T, doc *Mapping) {
				if doc.Len() != 0 {
					t.Errorf("expected empty document, got %d entries", doc.Len())
				}
			},
		},
		{
			name:  "scalar entries keep order",
			input: `[kint => 123, kstr => 'Hello', ktrue => true]`,
			check: func(t *testing.T, doc *Mapping) {
				want := []string{"kint", "kstr", "ktrue"}
				got := doc.Keys()

				if len(got) != len(want) {
					t.Fatalf("expected %d keys, got %d", len(want), len(got))
				}

				for i := range want {
					if got[i] != want[i] {
						t.Errorf("key %d: expected %q, got %q", i, want[i], got[i])
					}
				}

				v, _ := doc.Get("kint")
				if !v.Equal(IntValue(123)) {
					t.Errorf("kint: got %v", v.Native())
				}

				v, _ = doc.Get("kstr")
				if !v.Equal(StringValue("Hello")) {
					t.Errorf("kstr: got %v", v.Native())
				}

				v, _ = doc.Get("ktrue")
				if !v.Equal(BoolValue(true)) {
					t.Errorf("ktrue: got %v", v.Native())
				}
			},
		},
		{
			name:  "constant referenced by name",
			input: `global port = 80; [p => port]`,
			check: func(t *testing.T, doc *Mapping) {
				v, ok := doc.Get("p")
				if !ok || !v.Equal(IntValue(80)) {
					t.Errorf("p: got %v", v.Native())
				}
			},
		},
		{
			name:  "constants contribute nothing by themselves",
			input: `global a = 1; global b = 'two';`,
			check: func(t *testing.T, doc *Mapping) {
				if doc.Len() != 0 {
					t.Errorf("expected empty document, got %d entries", doc.Len())
				}
			},
		},
		{
			name:  "constant holding a mapping",
			input: `global srv = [host => 'db', port => 5432]; [server => srv]`,
			check: func(t *testing.T, doc *Mapping) {
				v, _ := doc.Get("server")
				if v.Kind() != KindMap {
					t.Fatalf("expected mapping, got %s", v.Kind())
				}

				port, _ := v.Map().Get("port")
				if !port.Equal(IntValue(5432)) {
					t.Errorf("port: got %v", port.Native())
				}
			},
		},
		{
			name:  "constant redeclaration last wins",
			input: `global x = 1; global x = 2; [v => x]`,
			check: func(t *testing.T, doc *Mapping) {
				v, _ := doc.Get("v")
				if !v.Equal(IntValue(2)) {
					t.Errorf("v: got %v", v.Native())
				}
			},
		},
		{
			name:  "constant usable inside its successor",
			input: `global base = 10; global more = ^{base 5 +}; [v => more]`,
			check: func(t *testing.T, doc *Mapping) {
				v, _ := doc.Get("v")
				if !v.Equal(IntValue(15)) {
					t.Errorf("v: got %v", v.Native())
				}
			},
		},
		{
			name:  "duplicate keys keep first position",
			input: `[a => 1, b => 2, a => 3]`,
			check: func(t *testing.T, doc *Mapping) {
				got := doc.Keys()
				if len(got) != 2 || got[0] != "a" || got[1] != "b" {
					t.Fatalf("unexpected keys: %v", got)
				}

				v, _ := doc.Get("a")
				if !v.Equal(IntValue(3)) {
					t.Errorf("a: got %v, want 3", v.Native())
				}
			},
		},
		{
			name:  "top-level mappings merge last wins",
			input: `[a => 1, b => 2] [b => 3, c => 4]`,
			check: func(t *testing.T, doc *Mapping) {
				got := doc.Keys()
				want := []string{"a", "b", "c"}

				if len(got) != len(want) {
					t.Fatalf("unexpected keys: %v", got)
				}

				for i := range want {
					if got[i] != want[i] {
						t.Errorf("key %d: expected %q, got %q", i, want[i], got[i])
					}
				}

				v, _ := doc.Get("b")
				if !v.Equal(IntValue(3)) {
					t.Errorf("b: got %v, want 3", v.Native())
				}
			},
		},
		{
			name: "nested mappings",
			input: `
				[
					database => [
						host => 'localhost',
						creds => [user => 'admin']
					]
				]
			`,
			check: func(t *testing.T, doc *Mapping) {
				db, _ := doc.Get("database")
				creds, _ := db.Map().Get("creds")
				user, _ := creds.Map().Get("user")

				if !user.Equal(StringValue("admin")) {
					t.Errorf("user: got %v", user.Native())
				}
			},
		},
		{
			name:  "array of scalars",
			input: `[xs => (list 1 'two' true)]`,
			check: func(t *testing.T, doc *Mapping) {
				v, _ := doc.Get("xs")
				want := ArrayValue(
					IntValue(1), StringValue("two"), BoolValue(true))

				if !v.Equal(want) {
					t.Errorf("xs: got %v", v.Native())
				}
			},
		},
		{
			name:  "expression value in document",
			input: `global port = 80; [next => ^{port 10 +}]`,
			check: func(t *testing.T, doc *Mapping) {
				v, _ := doc.Get("next")
				if !v.Equal(IntValue(90)) {
					t.Errorf("next: got %v", v.Native())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Convert(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("convert error: %v", err)
			}

			tt.check(t, doc)
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{
			name:  "forward reference",
			input: `[p => port] global port = 80;`,
			want:  ErrUnknownConstant,
		},
		{
			name:  "undeclared name",
			input: `[p => nothing]`,
			want:  ErrUnknownConstant,
		},
		{
			name:  "constant defined from unknown constant",
			input: `global a = b;`,
			want:  ErrUnknownConstant,
		},
		{
			name:  "failure mid-document returns no partial result",
			input: `[a => 1, b => missing]`,
			want:  ErrUnknownConstant,
		},
		{
			name:  "integer literal out of range",
			input: `[n => 99999999999999999999]`,
			want:  ErrSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Convert(context.Background(), tt.input)
			if err == nil {
				t.Fatalf("expected error, got nil")
			}

			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}

			if doc != nil {
				t.Errorf("expected nil document on failure, got %d entries",
					doc.Len())
			}
		})
	}
}

func TestSession_ConstantsPersist(t *testing.T) {
	ctx := context.Background()
	s := NewSession()

	if _, err := s.Convert(ctx, `global port = 80;`); err != nil {
		t.Fatalf("first convert: %v", err)
	}

	doc, err := s.Convert(ctx, `[p => ^{port 10 +}]`)
	if err != nil {
		t.Fatalf("second convert: %v", err)
	}

	v, _ := doc.Get("p")
	if !v.Equal(IntValue(90)) {
		t.Errorf("p: got %v, want 90", v.Native())
	}

	if v, ok := s.Constant("port"); !ok || !v.Equal(IntValue(80)) {
		t.Errorf("Constant(port): got %v, %v", v.Native(), ok)
	}
}

func TestConvert_NoConstantLeakage(t *testing.T) {
	ctx := context.Background()

	if _, err := Convert(ctx, `global port = 80;`); err != nil {
		t.Fatalf("first convert: %v", err)
	}

	// A fresh package-level conversion must not see the earlier table.
	_, err := Convert(ctx, `[p => port]`)
	if !errors.Is(err, ErrUnknownConstant) {
		t.Errorf("expected ErrUnknownConstant, got %v", err)
	}
}

func TestSession_WithConstants(t *testing.T) {
	s := NewSession(WithConstants(map[string]Value{
		"env":  StringValue("prod"),
		"port": IntValue(8080),
	}))

	doc, err := s.Convert(context.Background(), `[name => ^{env '-' +}]`)
	if err != nil {
		t.Fatalf("convert error: %v", err)
	}

	v, _ := doc.Get("name")
	if !v.Equal(StringValue("prod-")) {
		t.Errorf("name: got %v", v.Native())
	}

	// Source declarations may shadow preseeded constants.
	doc, err = s.Convert(
		context.Background(),
		`global port = 9090; [p => port]`,
	)
	if err != nil {
		t.Fatalf("convert error: %v", err)
	}

	v, _ = doc.Get("p")
	if !v.Equal(IntValue(9090)) {
		t.Errorf("p: got %v, want 9090", v.Native())
	}
}
