package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/color-game/palettes/accessibility"
	"github.com/color-game/palettes/colorspace"
)

var contrastCmd = &cobra.Command{
	Use:   "contrast <foreground> [background]",
	Short: "Check WCAG contrast between two colors",
	Long: `Check the WCAG 2.x contrast ratio between two colors.

Without a background, the foreground is checked against its ideal text color.

Examples:
  palettes contrast "#FFFFFF" "#1E96BE"
  palettes contrast 777`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runContrast,
}

// contrastReport is the WCAG verdict plus how alike the two colors are.
type contrastReport struct {
	accessibility.Result
	Similarity int `json:"similarity"`
}

func init() {
	rootCmd.AddCommand(contrastCmd)
}

func runContrast(cmd *cobra.Command, args []string) error {
	fg, err := colorspace.HexToColor(args[0])
	if err != nil {
		return errors.Wrap(err, "foreground")
	}

	var bg colorspace.ColorValue
	if len(args) == 2 {
		if bg, err = colorspace.HexToColor(args[1]); err != nil {
			return errors.Wrap(err, "background")
		}
	} else {
		fg, bg = accessibility.IdealTextColor(fg), fg
	}

	report := contrastReport{
		Result:     accessibility.Check(fg, bg),
		Similarity: colorspace.Similarity(fg, bg),
	}
	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), report)
	}
	return renderContrast(cmd.OutOrStdout(), fg, bg, report)
}
