package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/githubnext/calmhn/internal/prefs"
)

var cvdCmd = &cobra.Command{
	Use:   "cvd [mode]",
	Short: "Show or change the color-vision display mode",
	Long: `Show the persisted display mode, or set it.

Valid modes: protanopia, deuteranopia, default. "default" clears the
stored preference.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := prefs.Open(prefs.DefaultPath())
		if err != nil {
			return fmt.Errorf("opening preference store: %w", err)
		}
		defer store.Close()

		if len(args) == 0 {
			mode, err := store.Load()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "display mode: %s\n", mode)
			return nil
		}

		switch args[0] {
		case "default":
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "display mode reset to default")
		case string(prefs.ModeProtanopia), string(prefs.ModeDeuteranopia):
			mode := prefs.ParseMode(args[0])
			if err := store.Set(mode); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "display mode set to %s\n", mode)
		default:
			return fmt.Errorf("unknown mode %q (valid: protanopia, deuteranopia, default)", args[0])
		}
		return nil
	},
}
