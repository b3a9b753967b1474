package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"

	treelist "github.com/TFMV/treelist/internal/walk"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

type listKind string

const (
	kindDirectories listKind = "directories"
	kindFiles       listKind = "files"
)

// listing is the printed result for one root.
type listing struct {
	Root  string          `json:"root"`
	Kind  listKind        `json:"kind"`
	Paths []string        `json:"paths"`
	Stats *treelist.Stats `json:"stats,omitempty"`
}

// runListing lists every root, up to parallel-roots at a time, and prints the
// results in argument order.
func runListing(out, errOut io.Writer, kind listKind, roots []string, filter treelist.Filter) error {
	format := viper.GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s", format)
	}
	if err := validateRoots(roots); err != nil {
		return err
	}

	walker := treelist.NewWalker(treelist.Options{LogLevel: logLevel()})
	recursive := viper.GetBool("recursive")
	withStats := viper.GetBool("stats")
	sorted := viper.GetBool("sort")

	results := make([]listing, len(roots))
	var g errgroup.Group
	g.SetLimit(max(1, viper.GetInt("parallel-roots")))
	for i, root := range roots {
		g.Go(func() error {
			var (
				list  *treelist.PathList
				stats treelist.Stats
			)
			switch kind {
			case kindDirectories:
				list, stats = walker.ListDirectoriesWithStats(root, recursive, filter)
			case kindFiles:
				list, stats = walker.ListFilesWithStats(root, recursive, filter)
			default:
				return fmt.Errorf("unknown listing kind %q", kind)
			}

			paths := list.Items()
			if sorted {
				sort.Strings(paths)
			}
			results[i] = listing{Root: root, Kind: kind, Paths: paths}
			if withStats {
				results[i].Stats = &stats
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	return printText(out, errOut, results)
}

func printText(out, errOut io.Writer, results []listing) error {
	for _, res := range results {
		for _, p := range res.Paths {
			if _, err := fmt.Fprintln(out, p); err != nil {
				return err
			}
		}
		if res.Stats != nil {
			s := res.Stats
			fmt.Fprintf(errOut, "%s: %d %s, %d dirs read, %d inaccessible, %d filter panics, %d other errors, %s\n",
				res.Root, s.Matches, res.Kind, s.DirsRead, s.Inaccessible, s.FilterPanics, s.Unexpected, s.ElapsedTime)
		}
	}
	return nil
}

// validateRoots reports every root that is missing or not a directory.
// The walker itself would quietly return nothing for them.
func validateRoots(roots []string) error {
	var errs error
	for _, root := range roots {
		info, err := os.Stat(root)
		switch {
		case err != nil:
			errs = multierr.Append(errs, fmt.Errorf("root %q: %w", root, err))
		case !info.IsDir():
			errs = multierr.Append(errs, fmt.Errorf("root %q: not a directory", root))
		}
	}
	return errs
}

// regexFilter compiles the shared --regex flag. It returns nil when unset.
func regexFilter() (treelist.Filter, error) {
	expr := viper.GetString("regex")
	if expr == "" {
		return nil, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern: %w", err)
	}
	return treelist.MatchRegexp(re), nil
}

// combine joins the non-nil filters. No filters means accept everything.
func combine(filters ...treelist.Filter) treelist.Filter {
	var set []treelist.Filter
	for _, f := range filters {
		if f != nil {
			set = append(set, f)
		}
	}
	switch len(set) {
	case 0:
		return nil
	case 1:
		return set[0]
	default:
		return treelist.And(set...)
	}
}

func logLevel() treelist.LogLevel {
	switch {
	case viper.GetBool("verbose"):
		return treelist.LogLevelDebug
	case viper.GetBool("silent"):
		return treelist.LogLevelError
	default:
		return treelist.LogLevelWarn
	}
}
