package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/sector-atlas/config"
)

var version = "0.3.0"

var (
	dataPath     string
	resolverPath string
	logPath      string
	preview      bool
	mute         bool
)

var rootCmd = &cobra.Command{
	Use:   "sector-atlas",
	Short: "Interactive 3D sector map for the terminal",
	Long: "sector-atlas renders a sector dataset as a pseudo-3D node map:\n" +
		"pan/orbit/zoom with the mouse, gravity wells under the graticule,\n" +
		"and background resolution of geodesic coordinates.",
	Version:      version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAtlas()
	},
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "",
		"sector dataset file (default: "+filepath.Join("$XDG_CONFIG_HOME", "sector-atlas", "sectors.toml")+")")
	rootCmd.Flags().StringVar(&resolverPath, "resolver", "",
		"coordinate resolution table for pending sectors")
	rootCmd.Flags().StringVar(&logPath, "log", "",
		"debug log file (stdout belongs to the map)")
	rootCmd.Flags().BoolVar(&preview, "preview", false,
		"read-only auto-rotating preview, no interaction or HUD")
	rootCmd.Flags().BoolVar(&mute, "mute", false,
		"disable audio cues")
}

func datasetPath() string {
	if dataPath != "" {
		return dataPath
	}
	return filepath.Join(config.Dir(), "sectors.toml")
}

func fail(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
