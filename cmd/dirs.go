package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	treelist "github.com/TFMV/treelist/internal/walk"
)

var dirsCmd = &cobra.Command{
	Use:   "dirs [options] <root>...",
	Short: "List directories",
	Long: `List the directories beneath each root.

A directory rejected by --exclude or --regex is not descended into, so its
whole subtree is left out of a recursive listing.

Examples:
  treelist dirs /srv
  treelist dirs -r . --exclude=.git,vendor
  treelist dirs -r /home --regex='/projects/[^/]+$'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := dirsFilter()
		if err != nil {
			return err
		}
		return runListing(cmd.OutOrStdout(), cmd.ErrOrStderr(), kindDirectories, args, filter)
	},
}

func init() {
	rootCmd.AddCommand(dirsCmd)

	dirsCmd.Flags().StringSlice("exclude", []string{}, "Directory names to skip together with their subtrees")

	viper.BindPFlag("dirs.exclude", dirsCmd.Flags().Lookup("exclude"))
}

func dirsFilter() (treelist.Filter, error) {
	re, err := regexFilter()
	if err != nil {
		return nil, err
	}
	var exclude treelist.Filter
	if names := viper.GetStringSlice("dirs.exclude"); len(names) > 0 {
		exclude = treelist.ExcludeNames(names...)
	}
	return combine(exclude, re), nil
}
