package quoting

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
)

func TestEscapeString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"no quotes", "hello", "hello"},
		{"single quote", "it's", "it''s"},
		{"backslash", `hello\world`, `hello\\world`},
		{"unicode with quote", "café's", "café''s"},
		{"injection attempt", "'; DROP TABLE users; --", "''; DROP TABLE users; --"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeString(tt.input); got != tt.want {
				t.Errorf("EscapeString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	if got := String("O'Brien"); got != "'O''Brien'" {
		t.Errorf("String = %q", got)
	}
}

// DoubleQuote must agree with pgx's own identifier sanitising for every
// identifier without NUL bytes.
func TestDoubleQuoteMatchesPgx(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"users", "", `us"ers`, `"`, "my table", `users"."passwords`, "café"} {
		want := pgx.Identifier{in}.Sanitize()
		if got := DoubleQuote(in); got != want {
			t.Errorf("DoubleQuote(%q) = %s, pgx gives %s", in, got, want)
		}
	}
}

func TestBacktick(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"users", "`users`"},
		{"", "``"},
		{"us`ers", "`us``ers`"},
		{"users`; DROP TABLE x; --", "`users``; DROP TABLE x; --`"},
	}
	for _, tt := range tests {
		if got := Backtick(tt.input); got != tt.want {
			t.Errorf("Backtick(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTimestamp(t *testing.T) {
	t.Parallel()
	ts := time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)
	if got := Timestamp(ts); got != "2024-03-15 13:45:00" {
		t.Errorf("Timestamp = %q", got)
	}
	ts = ts.Add(1500 * time.Microsecond)
	if got := Timestamp(ts); got != "2024-03-15 13:45:00.0015" {
		t.Errorf("Timestamp with fraction = %q", got)
	}
}
