package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/color-game/palettes/colorspace"
	"github.com/color-game/palettes/harmony"
)

var harmonyCmd = &cobra.Command{
	Use:   "harmony [seed]",
	Short: "Build a color harmony",
	Long: `Build a color harmony.

With a seed, prints the seed and its harmony partners. Without one, draws a
weighted random harmony around a golden-angle hue.

Examples:
  palettes harmony "#1E96BE" --type triadic
  palettes harmony "#1E96BE" --fan
  palettes harmony --count 5
  palettes harmony --type analogous --count 3 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHarmony,
}

var (
	harmonyType  string
	harmonyCount int
	harmonyFan   bool
)

func init() {
	rootCmd.AddCommand(harmonyCmd)
	harmonyCmd.Flags().StringVarP(&harmonyType, "type", "t", "", "Harmony type, random when empty without a seed")
	harmonyCmd.Flags().IntVarP(&harmonyCount, "count", "c", 0, "Colors to draw for a random harmony")
	harmonyCmd.Flags().BoolVar(&harmonyFan, "fan", false, "Print the fan palette for the seed")
}

func runHarmony(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		if harmonyFan {
			return errors.New("--fan needs a seed color")
		}
		result, err := randomHarmony()
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(out, result)
		}
		return renderColors(out, fmt.Sprintf("%s around %.1f°", result.Harmony, result.BaseHue), result.Colors)
	}

	seed, err := colorspace.HexToColor(args[0])
	if err != nil {
		return errors.Wrapf(err, "invalid seed (try %s)", colorspace.FallbackSeed)
	}

	if harmonyFan {
		colors := harmony.Fan(seed)
		if jsonOutput {
			return writeJSON(out, colors)
		}
		return renderColors(out, fmt.Sprintf("fan of %s", seed.Hex), colors)
	}

	h := harmony.Complementary
	if harmonyType != "" {
		if h, err = harmony.ParseHarmony(harmonyType); err != nil {
			return err
		}
	}

	set, err := harmony.Set(seed, h)
	if err != nil {
		return err
	}
	if jsonOutput {
		return writeJSON(out, set)
	}
	return renderColors(out, fmt.Sprintf("%s of %s", h, seed.Hex), set)
}

func randomHarmony() (harmony.Result, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	count := min(harmonyCount, harmony.MaxFanSize)

	if harmonyType == "" {
		return harmony.Random(rng, count), nil
	}

	h, err := harmony.ParseHarmony(harmonyType)
	if err != nil {
		return harmony.Result{}, err
	}
	return harmony.RandomOf(rng, h, count)
}
