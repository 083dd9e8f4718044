package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/color-game/palettes/colorspace"
	"github.com/color-game/palettes/models"
	"github.com/color-game/palettes/naming"
)

var nameCmd = &cobra.Command{
	Use:   "name <hex>...",
	Short: "Name a palette from its colors",
	Long: `Name a palette from its colors.

The consistent name is a pure function of the hex values, so the same colors
always get the same name. --random draws a fresh name instead.

Examples:
  palettes name "#1E96BE" "#BE461E"
  palettes name 0ea5e9 0284c7 0369a1 --random`,
	Args: cobra.MinimumNArgs(1),
	RunE: runName,
}

var nameRandom bool

type nameResult struct {
	Name   string              `json:"name"`
	Traits naming.Traits       `json:"traits"`
	Colors []models.ColorShade `json:"colors"`
}

func init() {
	rootCmd.AddCommand(nameCmd)
	nameCmd.Flags().BoolVar(&nameRandom, "random", false, "Draw a random name")
}

func runName(cmd *cobra.Command, args []string) error {
	colors := make([]models.ColorShade, len(args))
	for i, arg := range args {
		c, err := colorspace.HexToColor(arg)
		if err != nil {
			return err
		}
		colors[i] = models.ColorShade{Name: fmt.Sprint(i + 1), Value: i + 1, Color: c}
	}

	result := nameResult{Traits: naming.Classify(colors), Colors: colors}
	if nameRandom {
		result.Name = naming.RandomName(rand.New(rand.NewSource(time.Now().UnixNano())), colors)
	} else {
		result.Name = naming.ConsistentName(colors)
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), result)
	}

	swatches := make([]colorspace.ColorValue, len(colors))
	for i, shade := range colors {
		swatches[i] = shade.Color
	}
	return renderColors(cmd.OutOrStdout(), result.Name, swatches)
}
