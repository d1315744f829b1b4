package id

import "testing"

func TestRandomGenerator_NewIDIsValidAndUnique(t *testing.T) {
	g := NewRandomGenerator()
	seen := make(map[string]struct{}, 64)
	for i := 0; i < 64; i++ {
		v, err := g.NewID()
		if err != nil {
			t.Fatalf("NewID error: %v", err)
		}
		if !Valid(v) {
			t.Fatalf("generated id %q is not valid", v)
		}
		if _, dup := seen[v]; dup {
			t.Fatalf("duplicate id %q", v)
		}
		seen[v] = struct{}{}
	}
}

func TestValid(t *testing.T) {
	cases := map[string]bool{
		"0123456789abcdef0123456789abcdef":  true,
		"0123456789ABCDEF0123456789abcdef":  false,
		"0123456789abcdef":                  false,
		"0123456789abcdef0123456789abcdeg":  false,
		"":                                  false,
		"../../0123456789abcdef0123456789a": false,
	}
	for in, want := range cases {
		if got := Valid(in); got != want {
			t.Fatalf("Valid(%q)=%v want %v", in, got, want)
		}
	}
}
