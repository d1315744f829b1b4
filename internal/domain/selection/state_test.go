package selection

import (
	"strings"
	"testing"
)

func TestState_StickySelectionUntilReset(t *testing.T) {
	s := Unselected()
	if s.IsSelected() {
		t.Fatalf("zero state must be unselected")
	}

	s, changed := s.Observe([]string{"Kim"})
	if !changed || !s.IsSelected() || s.Player != "Kim" {
		t.Fatalf("expected Selected(Kim), got %+v changed=%v", s, changed)
	}

	for i := 0; i < 3; i++ {
		var c bool
		s, c = s.Observe(nil)
		if c || s != Selected("Kim") {
			t.Fatalf("interaction %d dropped the selection: %+v", i, s)
		}
	}

	s = s.Reset()
	if s.IsSelected() || s != Unselected() {
		t.Fatalf("reset must return to unselected, got %+v", s)
	}
}

func TestState_ObserveOverwritesSelection(t *testing.T) {
	s, _ := Selected("Kim").Observe([]string{"Park"})
	if s.Player != "Park" {
		t.Fatalf("expected Park, got %+v", s)
	}

	s, changed := s.Observe([]string{"Park"})
	if changed {
		t.Fatalf("same player must not report a change")
	}
}

func TestState_FirstValueWins(t *testing.T) {
	s, _ := Unselected().Observe([]string{"Kim", "Park"})
	if s.Player != "Kim" {
		t.Fatalf("expected first value, got %q", s.Player)
	}
}

func TestState_RejectedValuesAreIgnored(t *testing.T) {
	cases := map[string]string{
		"empty":    "",
		"blank":    "   ",
		"too long": strings.Repeat("a", MaxPlayerLength+1),
		"bad utf8": "\xff\xfe",
		"control":  "Kim\x00",
		"newline":  "Kim\nPark",
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			s, changed := Selected("Kim").Observe([]string{v})
			if changed || s != Selected("Kim") {
				t.Fatalf("value %q should be ignored, got %+v", v, s)
			}
		})
	}
}

func TestValidPlayerParam_AcceptsMarkup(t *testing.T) {
	if !ValidPlayerParam("<script>alert(1)</script>") {
		t.Fatalf("markup is data and must be accepted; escaping happens at render time")
	}
	if !ValidPlayerParam(strings.Repeat("가", MaxPlayerLength/3)) {
		t.Fatalf("multi-byte names within the limit must be accepted")
	}
}
