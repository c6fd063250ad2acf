// printer_test.go
package rlox

import (
	"strings"
	"testing"
)

func Test_FormatToken_KindPayloadLine(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"(", "LeftParen line 0"},
		{"!=", "BangEqual line 0"},
		{`"asd"`, `String("asd") line 0`},
		{"420.69", "Number(420.69) line 0"},
		{"1337", "Number(1337) line 0"},
		{"radius", "Identifier(radius) line 0"},
		{"while", "While line 0"},
	}
	for _, tc := range cases {
		tokens := NewScanner(tc.src).ScanTokens()
		if got := FormatToken(tokens[0]); got != tc.want {
			t.Fatalf("%q: want %q, got %q", tc.src, tc.want, got)
		}
	}
}

func Test_FormatToken_Invalid(t *testing.T) {
	tokens := NewScanner("@").ScanTokens()
	got := FormatToken(tokens[0])
	if !strings.HasPrefix(got, "Invalid(") || !strings.HasSuffix(got, " line 0") {
		t.Fatalf("invalid rendering off: %q", got)
	}
	if !strings.Contains(got, "@") {
		t.Fatalf("invalid rendering should carry the message: %q", got)
	}
}

func Test_FormatToken_EscapesStringPayload(t *testing.T) {
	tokens := NewScanner("\"a\nb\"").ScanTokens()
	got := FormatToken(tokens[0])
	if !strings.Contains(got, `"a\nb"`) {
		t.Fatalf("newline in payload should render escaped: %q", got)
	}
}

func Test_FormatToken_LineNumber(t *testing.T) {
	tokens := NewScanner("\n\nnil").ScanTokens()
	if got := FormatToken(tokens[0]); got != "Nil line 2" {
		t.Fatalf("want %q, got %q", "Nil line 2", got)
	}
}

func Test_FormatTokens_OnePerLine(t *testing.T) {
	tokens := NewScanner("1 + 2").ScanTokens()
	got := FormatTokens(tokens)
	want := "Number(1) line 0\nPlus line 0\nNumber(2) line 0\nEof line 0"
	if got != want {
		t.Fatalf("want:\n%s\ngot:\n%s", want, got)
	}
}

func Test_FormatToken_ColorDisabledByDefault(t *testing.T) {
	tokens := NewScanner(`"x"`).ScanTokens()
	if got := FormatToken(tokens[0]); strings.Contains(got, "\033[") {
		t.Fatalf("color must be off unless EnableColor is set: %q", got)
	}
}
