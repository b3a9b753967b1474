package walk_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TFMV/treelist/walk"
)

func TestPublicAPI(t *testing.T) {
	mem := afero.NewMemMapFs()
	for _, p := range []string{"/r/f.txt", "/r/a/g.txt", "/r/a/skip/h.txt"} {
		require.NoError(t, afero.WriteFile(mem, p, []byte("x"), 0644))
	}
	require.NoError(t, mem.MkdirAll("/r/b", 0755))

	var reported []*walk.WalkError
	w := walk.NewWalker(walk.Options{
		FS:       walk.AferoFileSystem(mem),
		LogLevel: walk.LogLevelError,
		OnError:  func(err *walk.WalkError) { reported = append(reported, err) },
	})

	dirs := w.ListDirectories("/r", true, walk.ExcludeNames("skip"))
	got := dirs.Items()
	sort.Strings(got)
	assert.Equal(t, []string{"/r/a", "/r/b"}, got)

	files, stats := w.ListFilesWithStats("/r", true, walk.HasExtension("txt"))
	assert.Equal(t, 3, files.Len())
	assert.Equal(t, int64(3), stats.Matches)

	// a single failing filter call is absorbed
	boom := func(p string) bool {
		if p == "/r/f.txt" {
			panic("boom")
		}
		return true
	}
	assert.Equal(t, 2, w.ListFiles("/r", true, boom).Len())
	require.Len(t, reported, 1)
	assert.True(t, errors.Is(reported[0], walk.ErrFilterPanic))
	assert.False(t, walk.IsInaccessible(reported[0]))

	merged := walk.NewPathList("/extra")
	merged.Merge(files)
	assert.Equal(t, 4, merged.Len())
}
