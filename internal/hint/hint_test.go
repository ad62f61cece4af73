package hint

import (
	"testing"
)

func TestMinLength(t *testing.T) {
	tests := []struct {
		hint Hint
		want int
	}{
		{Hint{}, 0},
		{Hint{1}, 1},
		{Hint{5}, 5},
		{Hint{1, 1}, 3},
		{Hint{2, 3}, 6},
		{Hint{3, 2, 3}, 10},
	}
	for _, tt := range tests {
		if got := tt.hint.MinLength(); got != tt.want {
			t.Errorf("%v.MinLength() = %d, want %d", tt.hint, got, tt.want)
		}
	}
}

func TestHintEqual(t *testing.T) {
	if !(Hint{1, 2}).Equal(Hint{1, 2}) {
		t.Error("identical hints reported unequal")
	}
	if (Hint{1, 2}).Equal(Hint{2, 1}) {
		t.Error("reordered hints reported equal")
	}
	if (Hint{1}).Equal(Hint{1, 1}) {
		t.Error("hints of different length reported equal")
	}
	if !(Hint{}).Equal(nil) {
		t.Error("empty hint and nil hint reported unequal")
	}
}

func TestRuns(t *testing.T) {
	tests := []struct {
		line []bool
		want Hint
	}{
		{[]bool{}, nil},
		{[]bool{false, false}, nil},
		{[]bool{true}, Hint{1}},
		{[]bool{true, true, true}, Hint{3}},
		{[]bool{true, true, false, true, true, true}, Hint{2, 3}},
		{[]bool{false, true, false, true, false}, Hint{1, 1}},
		{[]bool{true, false, false, true}, Hint{1, 1}},
	}
	for _, tt := range tests {
		if got := Runs(tt.line); !got.Equal(tt.want) {
			t.Errorf("Runs(%v) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestHintString(t *testing.T) {
	if got := (Hint{}).String(); got != "" {
		t.Errorf("empty hint String() = %q, want \"\"", got)
	}
	if got := (Hint{3, 2, 3}).String(); got != "3 2 3" {
		t.Errorf("String() = %q, want \"3 2 3\"", got)
	}
}

func TestParse(t *testing.T) {
	h, err := Parse("3 2 3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !h.Equal(Hint{3, 2, 3}) {
		t.Fatalf("Parse(\"3 2 3\") = %v", h)
	}

	h, err = Parse("   ")
	if err != nil {
		t.Fatalf("Parse blank: %v", err)
	}
	if len(h) != 0 {
		t.Fatalf("Parse blank = %v, want empty hint", h)
	}

	for _, bad := range []string{"0", "-1", "1 x", "1.5"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", bad)
		}
	}
}

func TestParseLists(t *testing.T) {
	hints, err := ParseLists("1 2, , 3")
	if err != nil {
		t.Fatalf("ParseLists: %v", err)
	}
	want := []Hint{{1, 2}, {}, {3}}
	if len(hints) != len(want) {
		t.Fatalf("ParseLists returned %d hints, want %d", len(hints), len(want))
	}
	for i, h := range hints {
		if !h.Equal(want[i]) {
			t.Errorf("hint %d = %v, want %v", i, h, want[i])
		}
	}

	if _, err := ParseLists("1 2, 0, 3"); err == nil {
		t.Error("ParseLists with a zero block succeeded, want error")
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	const in = "4, 7, 3 2 3, , 1 8 3"
	hints, err := ParseLists(in)
	if err != nil {
		t.Fatalf("ParseLists: %v", err)
	}
	out, err := ParseLists(FormatLists(hints))
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if len(out) != len(hints) {
		t.Fatalf("round trip changed hint count: %d -> %d", len(hints), len(out))
	}
	for i := range hints {
		if !out[i].Equal(hints[i]) {
			t.Errorf("hint %d changed: %v -> %v", i, hints[i], out[i])
		}
	}
}
