package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dev-shetty/easydiff/internal/config"
	"github.com/dev-shetty/easydiff/internal/ui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available theme presets",
	Long: `List the built-in theme presets.

Select a preset with 'easydiff themes use <name>', or set it in the
config file:

  theme:
    preset: catppuccin-mocha`,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := make([]string, 0, len(styles.Presets))
		for name := range styles.Presets {
			names = append(names, name)
		}
		sort.Strings(names)

		current := cfg.Theme.Preset
		for _, name := range names {
			marker := "  "
			if name == current || (current == "" && name == "default") {
				marker = "* "
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", marker, name)
		}
		return nil
	},
}

var themesUseCmd = &cobra.Command{
	Use:   "use <preset>",
	Short: "Set the theme preset in the config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		preset := args[0]
		if _, ok := styles.Presets[preset]; !ok {
			return fmt.Errorf("unknown preset %q, run 'easydiff themes' to list presets", preset)
		}

		path := viper.ConfigFileUsed()
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("locating config file: %w", err)
			}
			path = filepath.Join(home, ".config", "easydiff", "config.yaml")
		}

		if err := config.SaveThemePreset(path, preset); err != nil {
			return fmt.Errorf("saving theme preset: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "theme preset set to %s in %s\n", preset, path)
		return nil
	},
}

func init() {
	themesCmd.AddCommand(themesUseCmd)
	rootCmd.AddCommand(themesCmd)
}
