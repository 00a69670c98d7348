package format_test

import (
	"testing"

	"github.com/mdresser/devtools/internal/format"
)

func TestAbbrev(t *testing.T) {
	if s := format.Abbrev("short", 10); s != "short" {
		t.Errorf("expected \"short\", but got: \"%s\"", s)
	}

	if s := format.Abbrev("much too long", 8); s != "much to…" {
		t.Errorf("expected \"much to…\", but got: \"%s\"", s)
	}
}

// Abbrev must not panic when the available width is smaller than the
// ellipsis, as happens on very narrow terminals.
func TestAbbrevTinyWidth(t *testing.T) {
	for _, max := range []int{1, 0, -2} {
		if s := format.Abbrev("README.md", max); s != "…" {
			t.Errorf("Abbrev(max=%d): expected \"…\", but got: \"%s\"", max, s)
		}
	}

	if s := format.Abbrev("", 0); s != "" {
		t.Errorf("expected \"\", but got: \"%s\"", s)
	}
}

func TestNumber(t *testing.T) {
	cases := map[int]string{
		0:        "0",
		7:        "7",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-4321:    "-4,321",
		-1000000: "-1,000,000",
	}

	for n, expected := range cases {
		if s := format.Number(n); s != expected {
			t.Errorf("Number(%d): expected \"%s\", but got: \"%s\"",
				n,
				expected,
				s,
			)
		}
	}
}

func TestSigned(t *testing.T) {
	if s := format.Signed(1500); s != "+1,500" {
		t.Errorf("expected \"+1,500\", but got: \"%s\"", s)
	}

	if s := format.Signed(-42); s != "-42" {
		t.Errorf("expected \"-42\", but got: \"%s\"", s)
	}

	if s := format.Signed(0); s != "+0" {
		t.Errorf("expected \"+0\", but got: \"%s\"", s)
	}
}

func TestPercent(t *testing.T) {
	if s := format.Percent(66.666); s != "66.7%" {
		t.Errorf("expected \"66.7%%\", but got: \"%s\"", s)
	}
}
