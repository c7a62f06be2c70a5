package utils

import "testing"

func TestStringToUnicode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"ascii", "Hi", `\u0048\u0069`},
		{"vietnamese", "ộ", `\u1ed9`},
		{"cjk", "博文", `\u535a\u6587`},
		{"newline", "a\n", `\u0061\u000a`},
		{"emoji surrogate pair", "😀", `\ud83d\ude00`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StringToUnicode(tt.input); got != tt.expected {
				t.Errorf("StringToUnicode(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestUnicodeToString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"no escapes", "plain text", "plain text"},
		{"all escaped", `\u0048\u0069`, "Hi"},
		{"upper case hex", `\u1ED9`, "ộ"},
		{"mixed", `# \u535a\u6587 ok`, "# 博文 ok"},
		{"surrogate pair", `\ud83d\ude00!`, "😀!"},
		{"truncated escape kept", `abc\u12`, `abc\u12`},
		{"invalid hex kept", `\uzzzz`, `\uzzzz`},
		{"backslash without u", `a\nb`, `a\nb`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnicodeToString(tt.input); got != tt.expected {
				t.Errorf("UnicodeToString(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestUnicode_RoundTrip(t *testing.T) {
	inputs := []string{
		"<p>Xin chào, thế giới!</p>",
		"```go\nfmt.Println(\"博客\")\n```",
		"tab\tand emoji 🚀",
	}
	for _, in := range inputs {
		if got := UnicodeToString(StringToUnicode(in)); got != in {
			t.Errorf("round trip mismatch: %q -> %q", in, got)
		}
	}
}

func TestUnicodeToStringPtr(t *testing.T) {
	if UnicodeToStringPtr(nil) != nil {
		t.Errorf("Expected nil for nil input")
	}
	s := `\u0061`
	if got := UnicodeToStringPtr(&s); got == nil || *got != "a" {
		t.Errorf("Expected \"a\", got %v", got)
	}
}
