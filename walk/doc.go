// Package walk provides concurrent directory and file listing.
//
// Every subdirectory is visited on its own goroutine and results are gathered
// in a PathList that many goroutines append to at once:
//
//	// All files below /srv/data
//	files := walk.ListFiles("/srv/data", true, nil)
//	for _, path := range files.All() {
//		fmt.Println(path)
//	}
//
//	// Directories, skipping .git and everything under it
//	dirs := walk.ListDirectories(".", true, walk.ExcludeNames(".git"))
//
//	// Custom filesystem, logger and error hook
//	w := walk.NewWalker(walk.Options{
//		FS:       walk.AferoFileSystem(afero.NewMemMapFs()),
//		LogLevel: walk.LogLevelDebug,
//		OnError: func(err *walk.WalkError) {
//			log.Printf("skipped: %v", err)
//		},
//	})
//	goFiles, stats := w.ListFilesWithStats("/", true, walk.HasExtension("go"))
//
// A listing never fails. Directories that cannot be read and filesystems or
// filters that panic only remove their own candidates from the result;
// OnError and the logger see each absorbed failure.
package walk
