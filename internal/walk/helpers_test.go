package treelist

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// exampleTree is the tree
//
//	/r/f.txt
//	/r/a/g.txt
//	/r/b/
var exampleTree = []string{
	"r/f.txt",
	"r/a/g.txt",
	"r/b/",
}

// newMemFS creates the given entries under "/". Entries ending in a slash
// are directories.
func newMemFS(t *testing.T, entries ...string) afero.Fs {
	t.Helper()
	mem := afero.NewMemMapFs()
	for _, e := range entries {
		p := "/" + e
		if p[len(p)-1] == '/' {
			require.NoError(t, mem.MkdirAll(p, 0755))
			continue
		}
		require.NoError(t, mem.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, afero.WriteFile(mem, p, []byte("x"), 0644))
	}
	return mem
}

// newDiskTree creates the given entries under a temporary directory and
// returns its path.
func newDiskTree(t *testing.T, entries ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, e := range entries {
		p := filepath.Join(root, filepath.FromSlash(e))
		if e[len(e)-1] == '/' {
			require.NoError(t, os.MkdirAll(p, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
	}
	return root
}

func newTestWalker(t *testing.T, fsys FileSystem) *Walker {
	return NewWalker(Options{FS: fsys, Logger: zaptest.NewLogger(t)})
}

func sorted(l *PathList) []string {
	items := l.Items()
	sort.Strings(items)
	return items
}

func sortedStrings(s ...string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}

// failingFS wraps a FileSystem and fails enumeration of chosen directories.
type failingFS struct {
	FileSystem
	failures map[string]error
	panics   map[string]bool
}

func (f *failingFS) ReadDirectories(dir string) ([]string, error) {
	if err := f.failure(dir); err != nil {
		return nil, err
	}
	return f.FileSystem.ReadDirectories(dir)
}

func (f *failingFS) ReadFiles(dir string) ([]string, error) {
	if err := f.failure(dir); err != nil {
		return nil, err
	}
	return f.FileSystem.ReadFiles(dir)
}

func (f *failingFS) failure(dir string) error {
	if f.panics[dir] {
		panic("enumerator crashed on " + dir)
	}
	if err, ok := f.failures[dir]; ok {
		return &fs.PathError{Op: "open", Path: dir, Err: err}
	}
	return nil
}

// errorRecorder collects WalkErrors reported from concurrent goroutines.
type errorRecorder struct {
	mu   sync.Mutex
	errs []*WalkError
}

func (r *errorRecorder) record(err *WalkError) {
	r.mu.Lock()
	r.errs = append(r.errs, err)
	r.mu.Unlock()
}

func (r *errorRecorder) all() []*WalkError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*WalkError(nil), r.errs...)
}
