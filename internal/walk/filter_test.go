package treelist

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		path   string
		want   bool
	}{
		{"accept all", AcceptAll, "/any/thing", true},
		{"extension with dot", HasExtension(".go"), "/src/main.go", true},
		{"extension without dot", HasExtension("go"), "/src/main.go", true},
		{"extension case", HasExtension("TXT"), "/docs/README.txt", true},
		{"extension mismatch", HasExtension("go", "md"), "/docs/notes.txt", false},
		{"extension empty ignored", HasExtension(""), "/docs/Makefile", false},
		{"suffix", HasSuffix("_test.go"), "/pkg/x_test.go", true},
		{"suffix mismatch", HasSuffix("_test.go"), "/pkg/x.go", false},
		{"regexp", MatchRegexp(regexp.MustCompile(`/logs/.*\.log$`)), "/var/logs/app.log", true},
		{"regexp mismatch", MatchRegexp(regexp.MustCompile(`\.log$`)), "/var/logs/app.txt", false},
		// "e" followed by a combining acute accent matches a precomposed pattern
		{"regexp normalizes", MatchRegexp(regexp.MustCompile("caf\u00e9")), "/menu/cafe\u0301.txt", true},
		{"exclude name", ExcludeNames(".git", "node_modules"), "/repo/.git", false},
		{"exclude keeps others", ExcludeNames(".git"), "/repo/src", true},
		{"exclude matches base only", ExcludeNames("src"), "/src/lib", true},
		{"not", Not(HasExtension("go")), "/a.go", false},
		{"not nil", Not(nil), "/a.go", false},
		{"and", And(HasExtension("go"), HasSuffix("_test.go")), "/a_test.go", true},
		{"and fails", And(HasExtension("go"), HasSuffix("_test.go")), "/a.go", false},
		{"and nil member", And(nil, HasExtension("go")), "/a.go", true},
		{"or", Or(HasExtension("md"), HasExtension("go")), "/a.go", true},
		{"or empty", Or(), "/a.go", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter(tt.path))
		})
	}
}
