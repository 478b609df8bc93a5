package lexrules

import "testing"

func TestIsValidUnquotedKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"id", true},
		{"_private", true},
		{"a.b.c", true},
		{"user1", true},
		{"", false},
		{"1id", false},
		{"has space", false},
		{"with-dash", false},
		{"é", false},
	}
	for _, tt := range tests {
		if got := IsValidUnquotedKey(tt.key); got != tt.want {
			t.Errorf("IsValidUnquotedKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestIsNumericLike(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"123", true},
		{"-123", true},
		{"0", true},
		{"0.5", true},
		{"-0.5", true},
		{"1e10", true},
		{"1.5e-10", true},
		{"05", true},
		{"-007", true},
		{"abc", false},
		{"1.", false},
		{"-", false},
		{"1e", false},
	}
	for _, tt := range tests {
		if got := IsNumericLike(tt.s); got != tt.want {
			t.Errorf("IsNumericLike(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestHasForbiddenLeadingZero(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"05", true},
		{"-007", true},
		{"0", false},
		{"0.5", false},
		{"-0.5", false},
		{"123", false},
		{"1e5", false},
	}
	for _, tt := range tests {
		if got := HasForbiddenLeadingZero(tt.s); got != tt.want {
			t.Errorf("HasForbiddenLeadingZero(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestNeedsQuoting(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"", true},
		{"Ada", false},
		{" Ada", true},
		{"Ada ", true},
		{"true", true},
		{"false", true},
		{"null", true},
		{"-foo", true},
		{"123", true},
		{"-123", true},
		{"a:b", true},
		{"a,b", true},
		{"a\nb", true},
		{"hello world", false},
	}
	for _, tt := range tests {
		if got := NeedsQuoting(tt.s, Comma); got != tt.want {
			t.Errorf("NeedsQuoting(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
	if NeedsQuoting("a,b", Tab) {
		t.Errorf("NeedsQuoting(%q, Tab) = true, want false (comma is not the active delimiter)", "a,b")
	}
	if !NeedsQuoting("a\tb", Tab) {
		t.Errorf("NeedsQuoting with active tab delimiter should still quote embedded tabs")
	}
}

func TestQuoteUnquoteRoundTrip(t *testing.T) {
	tests := []string{
		"a:b",
		"a,b",
		"a\nb",
		`a"b`,
		`a\b`,
		"",
		"plain",
	}
	for _, s := range tests {
		quoted := Quote(s)
		got, err := Unquote(quoted)
		if err != nil {
			t.Fatalf("Unquote(Quote(%q)) error: %v", s, err)
		}
		if got != s {
			t.Errorf("Unquote(Quote(%q)) = %q, want %q", s, got, s)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	tests := []string{
		`"unterminated`,
		`"bad\xescape"`,
		`no quotes`,
		`"trailing"garbage`,
	}
	for _, s := range tests {
		if _, err := Unquote(s); err == nil {
			t.Errorf("Unquote(%q) expected error, got nil", s)
		}
	}
}

func TestComputeIndent(t *testing.T) {
	depth, content, err := ComputeIndent("    key: 1", 2, true)
	if err != nil || depth != 2 || content != "key: 1" {
		t.Fatalf("ComputeIndent = %d, %q, %v", depth, content, err)
	}

	if _, _, err := ComputeIndent("   key: 1", 2, true); err != ErrUnevenIndent {
		t.Fatalf("expected ErrUnevenIndent, got %v", err)
	}

	if _, _, err := ComputeIndent("\tkey: 1", 2, true); err != ErrTabInIndent {
		t.Fatalf("expected ErrTabInIndent, got %v", err)
	}

	depth, content, err = ComputeIndent("\tkey: 1", 2, false)
	if err != nil || depth != 1 || content != "key: 1" {
		t.Fatalf("lax ComputeIndent = %d, %q, %v", depth, content, err)
	}
}

func TestIndexOutsideQuotes(t *testing.T) {
	tests := []struct {
		s      string
		target byte
		want   int
	}{
		{"key: value", ':', 3},
		{`"a:b": value`, ':', 5},
		{`"a\"b": c`, ':', 6},
		{"no-target", ':', -1},
	}
	for _, tt := range tests {
		if got := IndexOutsideQuotes(tt.s, tt.target); got != tt.want {
			t.Errorf("IndexOutsideQuotes(%q, %q) = %d, want %d", tt.s, tt.target, got, tt.want)
		}
	}
}

func TestSplitOutsideQuotes(t *testing.T) {
	got := SplitOutsideQuotes(`a,"b,c",d`, ',')
	want := []string{"a", `"b,c"`, "d"}
	if len(got) != len(want) {
		t.Fatalf("SplitOutsideQuotes length = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, got[i], want[i])
		}
	}
}
