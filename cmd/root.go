package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "treelist",
	Short: "List directories and files concurrently",
	Long: `treelist lists the directories or files beneath one or more roots,
reading every subdirectory in parallel. Unreadable directories are skipped
rather than aborting the listing.

Examples:
  treelist dirs -r /srv --exclude=.git,node_modules
  treelist files -r . --ext=go,md
  treelist files -r /var/log --regex='\.log(\.[0-9]+)?$' --format=json --stats`,
	Version:      version,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.treelist.yaml)")
	rootCmd.PersistentFlags().BoolP("recursive", "r", false, "Descend into subdirectories")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("silent", false, "Log errors only")
	rootCmd.PersistentFlags().String("format", "text", "Output format (text|json)")
	rootCmd.PersistentFlags().Bool("stats", false, "Print listing statistics")
	rootCmd.PersistentFlags().Bool("sort", true, "Sort paths before printing")
	rootCmd.PersistentFlags().Int("parallel-roots", 4, "Number of roots listed at the same time")
	rootCmd.PersistentFlags().String("regex", "", "Keep only paths matching this regular expression")

	// Bind flags to viper
	viper.BindPFlag("recursive", rootCmd.PersistentFlags().Lookup("recursive"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("silent", rootCmd.PersistentFlags().Lookup("silent"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("stats", rootCmd.PersistentFlags().Lookup("stats"))
	viper.BindPFlag("sort", rootCmd.PersistentFlags().Lookup("sort"))
	viper.BindPFlag("parallel-roots", rootCmd.PersistentFlags().Lookup("parallel-roots"))
	viper.BindPFlag("regex", rootCmd.PersistentFlags().Lookup("regex"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			// Search config in home directory with name ".treelist" (without extension).
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".treelist")
		}
	}

	// TREELIST_PARALLEL_ROOTS and friends
	viper.SetEnvPrefix("treelist")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
