package treelist

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

// setupLargeTestDir creates a directory tree for benchmarking.
func setupLargeTestDir(b *testing.B) string {
	tempDir := b.TempDir()

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			subdirPath := filepath.Join(tempDir, fmt.Sprintf("dir%d", i), fmt.Sprintf("subdir%d", j))
			if err := os.MkdirAll(subdirPath, 0755); err != nil {
				b.Fatalf("Failed to create subdirectory: %v", err)
			}

			for k := 0; k < 10; k++ {
				for _, ext := range []string{".txt", ".go", ".md", ".json", ".yaml"} {
					filePath := filepath.Join(subdirPath, fmt.Sprintf("file%d%s", k, ext))
					if err := os.WriteFile(filePath, []byte("data"), 0644); err != nil {
						b.Fatalf("Failed to create file: %v", err)
					}
				}
			}
		}
	}

	return tempDir
}

func BenchmarkListFiles(b *testing.B) {
	tempDir := setupLargeTestDir(b)
	w := NewWalker(Options{Logger: zap.NewNop()})

	b.Run("filepath.WalkDir", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var paths []string
			_ = filepath.WalkDir(tempDir, func(path string, d os.DirEntry, err error) error {
				if err == nil && !d.IsDir() {
					paths = append(paths, path)
				}
				return nil
			})
		}
	})

	b.Run("ListFiles", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if n := w.ListFiles(tempDir, true, nil).Len(); n != 1250 {
				b.Fatalf("expected 1250 files, got %d", n)
			}
		}
	})

	b.Run("ListFiles/filtered", func(b *testing.B) {
		filter := HasExtension("go")
		for i := 0; i < b.N; i++ {
			_ = w.ListFiles(tempDir, true, filter)
		}
	})
}

func BenchmarkListDirectories(b *testing.B) {
	tempDir := setupLargeTestDir(b)
	w := NewWalker(Options{Logger: zap.NewNop()})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = w.ListDirectories(tempDir, true, nil)
	}
}
