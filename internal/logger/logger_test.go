package logger

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{name: "short string untouched", in: "hello", limit: 10, want: "hello"},
		{name: "trimmed before measuring", in: "  hello  ", limit: 10, want: "hello"},
		{name: "truncated with ellipsis", in: "hello world", limit: 5, want: "hello..."},
		{name: "zero limit", in: "hello", limit: 0, want: ""},
		{name: "negative limit", in: "hello", limit: -1, want: ""},
		{name: "multibyte runes", in: "привет мир", limit: 6, want: "привет..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateForLog(tc.in, tc.limit); got != tc.want {
				t.Fatalf("TruncateForLog(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	for _, json := range []bool{true, false} {
		l, err := New(json, true)
		if err != nil {
			t.Fatalf("New(json=%v) error: %v", json, err)
		}
		if l == nil {
			t.Fatal("expected non-nil logger")
		}
	}
}
