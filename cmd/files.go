package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	treelist "github.com/TFMV/treelist/internal/walk"
)

var filesCmd = &cobra.Command{
	Use:   "files [options] <root>...",
	Short: "List files",
	Long: `List the files beneath each root.

Filters apply to file paths only. With -r every directory below the root is
scanned, whatever its name.

Examples:
  treelist files .
  treelist files -r . --ext=go --suffix=_test.go
  treelist files -r /var/log --regex='\.log$' --format=json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := filesFilter()
		if err != nil {
			return err
		}
		return runListing(cmd.OutOrStdout(), cmd.ErrOrStderr(), kindFiles, args, filter)
	},
}

func init() {
	rootCmd.AddCommand(filesCmd)

	filesCmd.Flags().StringSlice("ext", []string{}, "File extensions to keep (e.g. go,md)")
	filesCmd.Flags().StringSlice("suffix", []string{}, "Path suffixes to keep (e.g. _test.go)")

	viper.BindPFlag("files.ext", filesCmd.Flags().Lookup("ext"))
	viper.BindPFlag("files.suffix", filesCmd.Flags().Lookup("suffix"))
}

func filesFilter() (treelist.Filter, error) {
	re, err := regexFilter()
	if err != nil {
		return nil, err
	}
	var ext, suffix treelist.Filter
	if exts := viper.GetStringSlice("files.ext"); len(exts) > 0 {
		ext = treelist.HasExtension(exts...)
	}
	if suffixes := viper.GetStringSlice("files.suffix"); len(suffixes) > 0 {
		suffix = treelist.HasSuffix(suffixes...)
	}
	return combine(ext, suffix, re), nil
}
