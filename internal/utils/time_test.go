package utils

import "testing"

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate(" 2026-09-01 ")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := FormatDate(d); got != "2026-09-01" {
		t.Fatalf("ida e volta quebrou: %q", got)
	}
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	for _, bad := range []string{"", "01/09/2026", "2026-9-1", "2026-09-01T10:00:00Z"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("%q deveria falhar", bad)
		}
	}
}

func TestNightCount(t *testing.T) {
	in, _ := ParseDate("2026-09-01")
	out, _ := ParseDate("2026-09-16")
	if nights := int64(out.Sub(in).Hours() / 24); nights != 15 {
		t.Fatalf("esperava 15 noites, veio %d", nights)
	}
}
