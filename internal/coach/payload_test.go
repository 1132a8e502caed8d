package coach

import "testing"

func TestExtractPayload(t *testing.T) {
	want := `{"motif":"Fork","severity":"Blunder","explanation":"Qd5 forks king and rook."}`

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare json", want, want},
		{"surrounding whitespace", "\n  " + want + "  \n", want},
		{"json fence", "```json\n" + want + "\n```", want},
		{"bare fence", "```\n" + want + "\n```", want},
		{"leading prose", "Here is the analysis:\n" + want, want},
		{"prose both sides", "Sure! " + want + " Hope that helps.", want},
		{"no json at all", "no braces here", "no braces here"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPayload(tt.input); got != tt.want {
				t.Fatalf("ExtractPayload() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractPayloadIdempotent(t *testing.T) {
	fenced := "```json\n{\"motif\":\"Pin\"}\n```"
	once := ExtractPayload(fenced)
	twice := ExtractPayload(once)
	if once != twice {
		t.Fatalf("extraction not idempotent: %q vs %q", once, twice)
	}
}
