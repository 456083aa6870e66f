package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/talvik/gamestrings/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gamestrings [table-key]",
		Short: "Game String Table and Localization Toolkit",
		Long: `gamestrings resolves the string tables bundled with the save editor
(species, items, moves, balls, locations) into indexable lookup tables and
reconciles translated UI strings against previously saved translation files.

Examples:
  gamestrings --list-tables              # Show every table key in the bundle
  gamestrings text_species_en            # Print one table with line indices
  gamestrings --list species             # Build the sorted species combo list
  gamestrings --merge lang_de.txt        # Merge a saved translation file
  gamestrings --export-db catalog.db     # Export all tables to SQLite`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.gamestrings.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.BundlePath, "bundle", "b", "", "Bundle path (.zip archive or directory; default is the embedded bundle)")
	cmd.Flags().StringVar(&flags.Prefix, "prefix", flags.Prefix, "Namespace prefix of bundle entries")
	cmd.Flags().StringVarP(&flags.Locale, "locale", "l", flags.Locale, "Locale code (ja, en, fr, de, it, es, ko, zh)")
	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", "", "Write results to file instead of stdout")
	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "Also write diagnostics to a rotated log file")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug diagnostics")

	cmd.Flags().BoolVar(&flags.ListTables, "list-tables", false, "List every table key in the bundle")
	cmd.Flags().StringVar(&flags.ListKind, "list", "", "Build a combo list (species, items, moves, balls, locations, games, versions)")
	cmd.Flags().BoolVar(&flags.Dump, "dump", false, "Dump the current UI strings as translation lines")
	cmd.Flags().StringVar(&flags.MergeFile, "merge", "", "Merge a saved translation file against the current UI strings")
	cmd.Flags().StringVar(&flags.ApplyPrefix, "apply", "", "Load and apply a bundled translation table by file prefix (e.g. lang)")
	cmd.Flags().BoolVar(&flags.Suggest, "suggest", false, "Suggest machine translations for the dumped UI strings (needs OpenAI key)")
	cmd.Flags().StringVar(&flags.ExportDB, "export-db", "", "Export all tables and combo lists to a SQLite catalog")
	cmd.Flags().StringVar(&flags.RepackPath, "repack", "", "Repack the bundle as a zip with the merged translation file")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("bundle.path", cmd.Flags().Lookup("bundle"))
	viper.BindPFlag("bundle.prefix", cmd.Flags().Lookup("prefix"))
	viper.BindPFlag("locale", cmd.Flags().Lookup("locale"))
	viper.BindPFlag("output.file", cmd.Flags().Lookup("output"))
	viper.BindPFlag("log.file", cmd.Flags().Lookup("log-file"))
	viper.BindPFlag("log.verbose", cmd.Flags().Lookup("verbose"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".gamestrings" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gamestrings")
	}

	// Environment variables
	viper.SetEnvPrefix("GAMESTRINGS")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("assist.openai_key")
}
