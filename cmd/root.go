package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/leafiz/internal/config"
	"github.com/abhisek/leafiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "leafiz",
	Short: "Houseplant identification quiz",
	Long:  "Leafiz — a terminal quiz game that teaches you to recognize houseplants by their scientific names.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEAFIZ_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: $XDG_CONFIG_HOME/leafiz/config.toml)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadFileConfig reads the config file named by --config or the default
// XDG location. A missing file yields an empty config.
func loadFileConfig(cmd *cobra.Command) (config.FileConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return config.Load(path)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the LEAFIZ_DB env var, then the config file, then the
// default XDG path.
func resolveDBPath(cmd *cobra.Command, fileCfg config.FileConfig) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("LEAFIZ_DB"); p != "" {
		return p, store.EnsureDir(p)
	}
	if fileCfg.Game.DBPath != nil && *fileCfg.Game.DBPath != "" {
		return *fileCfg.Game.DBPath, store.EnsureDir(*fileCfg.Game.DBPath)
	}
	return store.DefaultDBPath()
}
