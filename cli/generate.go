package cli

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/color-game/palettes/colorspace"
	"github.com/color-game/palettes/naming"
	"github.com/color-game/palettes/shades"
)

var generateCmd = &cobra.Command{
	Use:   "generate <seed>",
	Short: "Generate a shade scale from a seed color",
	Long: `Generate a shade scale from a seed color.

Examples:
  palettes generate "#1E96BE"
  palettes generate 3b82f6 --algorithm radix --count 9
  palettes generate f43 --shift 30 --pattern ordinal --json`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

var (
	generateAlgorithm string
	generateCount     int
	generateShift     int
	generatePattern   string
	generateLabel     string
	generateRandom    bool
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateAlgorithm, "algorithm", "a", string(shades.Tailwind), "Shade algorithm")
	generateCmd.Flags().IntVarP(&generateCount, "count", "c", shades.DefaultShadeCount, "Number of shades (5-13, odd)")
	generateCmd.Flags().IntVarP(&generateShift, "shift", "s", 0, "Contrast shift (-50 to 50)")
	generateCmd.Flags().StringVarP(&generatePattern, "pattern", "p", string(shades.Pattern50To950), "Naming pattern (50-950, 100-900, ordinal)")
	generateCmd.Flags().StringVarP(&generateLabel, "label", "l", "", "Palette name, generated when empty")
	generateCmd.Flags().BoolVar(&generateRandom, "random-name", false, "Use a random instead of a consistent name")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	seed, err := colorspace.HexToColor(args[0])
	if err != nil {
		return errors.Wrapf(err, "invalid seed (try %s)", colorspace.FallbackSeed)
	}

	algorithm, err := shades.ParseAlgorithm(generateAlgorithm)
	if err != nil {
		return err
	}
	pattern, err := shades.ParsePattern(generatePattern)
	if err != nil {
		return err
	}

	palette, err := shades.Generate(seed, shades.Options{
		Algorithm:     algorithm,
		ShadeCount:    generateCount,
		ContrastShift: generateShift,
		NamingPattern: pattern,
		Label:         generateLabel,
	})
	if err != nil {
		return err
	}

	if palette.Name == "" {
		if generateRandom {
			palette.Name = naming.RandomName(rand.New(rand.NewSource(time.Now().UnixNano())), palette.Shades)
		} else {
			palette.Name = naming.ConsistentName(palette.Shades)
		}
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), palette)
	}
	return renderPalette(cmd.OutOrStdout(), palette)
}
