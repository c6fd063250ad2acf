package rlox

import (
	"strings"
	"testing"
)

func mustContain(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected output to contain %q\n--- output ---\n%s", sub, s)
	}
}

func Test_Diagnostics_CollectsInvalidInOrder(t *testing.T) {
	tokens := NewScanner("@ + #").ScanTokens()
	bad := Diagnostics(tokens)
	if len(bad) != 2 {
		t.Fatalf("want 2 invalid tokens, got %d: %v", len(bad), bad)
	}
	mustContain(t, bad[0].Literal.(string), "@")
	mustContain(t, bad[1].Literal.(string), "#")
}

func Test_Diagnostics_EmptyForCleanInput(t *testing.T) {
	if bad := Diagnostics(NewScanner("var x = 1;").ScanTokens()); bad != nil {
		t.Fatalf("clean input should produce no diagnostics, got %v", bad)
	}
}

func Test_FormatInvalid_ShowsCaretAndContext(t *testing.T) {
	src := "var x = 1;\nvar y = x + @;\nprint y;"
	bad := Diagnostics(NewScanner(src).ScanTokens())
	if len(bad) != 1 {
		t.Fatalf("want 1 invalid token, got %v", bad)
	}
	out := FormatInvalid(src, bad[0])

	// Header with 1-based coordinates ('@' sits at 0-based col 12 of line 1)
	mustContain(t, out, "LEXICAL ERROR at 2:13:")
	// Context lines (line numbers + source)
	mustContain(t, out, "   1 | var x = 1;")
	mustContain(t, out, "   2 | var y = x + @;")
	mustContain(t, out, "   3 | print y;")
	// Caret aligned under the '@'
	mustContain(t, out, "     | "+strings.Repeat(" ", 12)+"^")
}

func Test_FormatInvalid_ClampsOutOfRange(t *testing.T) {
	tok := Token{Type: INVALID, Literal: "boom", Line: 99, Col: 99}
	out := FormatInvalid("x", tok)
	mustContain(t, out, "boom")
	mustContain(t, out, "   1 | x")
}

func Test_FormatInvalid_EmptySource(t *testing.T) {
	tok := Token{Type: INVALID, Literal: "boom"}
	out := FormatInvalid("", tok)
	mustContain(t, out, "LEXICAL ERROR at 1:1: boom")
}
