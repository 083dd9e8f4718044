package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "palettes",
	Short: "Color palette synthesis engine and API",
	Long: `palettes generates shade scales, color harmonies, WCAG contrast checks
and palette names from a seed color.

Run "palettes serve" for the HTTP API, or use the generate, harmony,
contrast and name commands directly from the terminal.`,
	SilenceUsage: true,
}

var jsonOutput bool

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of swatches")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
