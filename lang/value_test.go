package lang

import (
	"testing"
)

func TestMapping_Order(t *testing.T) {
	m := NewMapping()
	m.Set("b", IntValue(1))
	m.Set("a", IntValue(2))
	m.Set("c", IntValue(3))

	want := []string{"b", "a", "c"}
	got := m.Keys()

	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(got))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestMapping_SetKeepsPosition(t *testing.T) {
	m := NewMapping()
	m.Set("a", IntValue(1))
	m.Set("b", IntValue(2))
	m.Set("a", IntValue(3))

	got := m.Keys()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected keys: %v", got)
	}

	v, _ := m.Get("a")
	if !v.Equal(IntValue(3)) {
		t.Errorf("a: got %v, want 3", v.Native())
	}
}

func TestMapping_Merge(t *testing.T) {
	m := NewMapping()
	m.Set("a", IntValue(1))
	m.Set("b", IntValue(2))

	o := NewMapping()
	o.Set("b", IntValue(3))
	o.Set("c", IntValue(4))

	m.Merge(o)

	got := m.Keys()
	want := []string{"a", "b", "c"}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	v, _ := m.Get("b")
	if !v.Equal(IntValue(3)) {
		t.Errorf("b: got %v, want 3", v.Native())
	}
}

func TestMapping_MarshalJSON(t *testing.T) {
	m := NewMapping()
	m.Set("z", IntValue(1))
	m.Set("a", StringValue("two"))

	inner := NewMapping()
	inner.Set("flag", BoolValue(true))
	m.Set("nested", MapValue(inner))

	data, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	want := `{"z":1,"a":"two","nested":{"flag":true}}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestValue_Text(t *testing.T) {
	inner := NewMapping()
	inner.Set("a", IntValue(1))

	tests := []struct {
		name string
		val  Value
		want string
	}{
		{
			name: "int",
			val:  IntValue(-42),
			want: "-42",
		},
		{
			name: "float",
			val:  FloatValue(2.5),
			want: "2.5",
		},
		{
			name: "whole float keeps no point",
			val:  FloatValue(12),
			want: "12",
		},
		{
			name: "bool",
			val:  BoolValue(false),
			want: "false",
		},
		{
			name: "string is unquoted",
			val:  StringValue("hi"),
			want: "hi",
		},
		{
			name: "array renders as source",
			val:  ArrayValue(IntValue(1), StringValue("two")),
			want: "(list 1 'two')",
		},
		{
			name: "mapping renders as source",
			val:  MapValue(inner),
			want: "[a => 1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.val.Text(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValue_Equal(t *testing.T) {
	ma := NewMapping()
	ma.Set("a", IntValue(1))
	ma.Set("b", IntValue(2))

	mb := NewMapping()
	mb.Set("b", IntValue(2))
	mb.Set("a", IntValue(1))

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{
			name: "same int",
			a:    IntValue(5),
			b:    IntValue(5),
			want: true,
		},
		{
			name: "int vs float",
			a:    IntValue(5),
			b:    FloatValue(5),
			want: false,
		},
		{
			name: "same array",
			a:    ArrayValue(IntValue(1), BoolValue(true)),
			b:    ArrayValue(IntValue(1), BoolValue(true)),
			want: true,
		},
		{
			name: "array order matters",
			a:    ArrayValue(IntValue(1), IntValue(2)),
			b:    ArrayValue(IntValue(2), IntValue(1)),
			want: false,
		},
		{
			name: "mapping order matters",
			a:    MapValue(ma),
			b:    MapValue(mb),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValue_Native(t *testing.T) {
	m := NewMapping()
	m.Set("n", IntValue(7))

	v := ArrayValue(IntValue(1), StringValue("s"), MapValue(m))

	native, ok := v.Native().([]any)
	if !ok {
		t.Fatalf("expected []any, got %T", v.Native())
	}

	if native[0] != int64(1) || native[1] != "s" {
		t.Errorf("unexpected scalars: %v", native)
	}

	nested, ok := native[2].(map[string]any)
	if !ok || nested["n"] != int64(7) {
		t.Errorf("unexpected nested mapping: %v", native[2])
	}
}
