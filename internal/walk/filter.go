package treelist

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Filter decides whether a candidate path is kept. A nil Filter keeps
// everything. Filters may be called from many goroutines at once and must not
// rely on call order. A Filter that panics rejects that one candidate.
type Filter func(path string) bool

// AcceptAll keeps every path.
func AcceptAll(string) bool { return true }

// HasExtension keeps paths whose extension is one of exts. Extensions may be
// given with or without the leading dot and are compared case-insensitively.
func HasExtension(exts ...string) Filter {
	want := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		want[ext] = struct{}{}
	}
	return func(path string) bool {
		_, ok := want[strings.ToLower(filepath.Ext(path))]
		return ok
	}
}

// HasSuffix keeps paths ending in any of suffixes.
func HasSuffix(suffixes ...string) Filter {
	return func(path string) bool {
		for _, s := range suffixes {
			if strings.HasSuffix(path, s) {
				return true
			}
		}
		return false
	}
}

// MatchRegexp keeps paths matched by re. The path is put in NFC form before
// matching so that decomposed names from some filesystems still match
// precomposed patterns. The returned path itself is not altered.
func MatchRegexp(re *regexp.Regexp) Filter {
	return func(path string) bool {
		return re.MatchString(norm.NFC.String(path))
	}
}

// ExcludeNames rejects paths whose base name equals one of names. Used as a
// directory filter it prunes whole subtrees, e.g. ExcludeNames(".git").
func ExcludeNames(names ...string) Filter {
	excluded := make(map[string]struct{}, len(names))
	for _, n := range names {
		excluded[n] = struct{}{}
	}
	return func(path string) bool {
		_, ok := excluded[filepath.Base(path)]
		return !ok
	}
}

// Not inverts f.
func Not(f Filter) Filter {
	return func(path string) bool {
		return !f.keep(path)
	}
}

// And keeps a path only when every filter keeps it.
func And(filters ...Filter) Filter {
	return func(path string) bool {
		for _, f := range filters {
			if !f.keep(path) {
				return false
			}
		}
		return true
	}
}

// Or keeps a path when any filter keeps it. Or with no filters keeps nothing.
func Or(filters ...Filter) Filter {
	return func(path string) bool {
		for _, f := range filters {
			if f.keep(path) {
				return true
			}
		}
		return false
	}
}

func (f Filter) keep(path string) bool {
	if f == nil {
		return true
	}
	return f(path)
}
