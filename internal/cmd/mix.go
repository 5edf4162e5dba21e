package cmd

import (
	"fmt"

	"github.com/ironsheep/colourspace-mcp/internal/imaging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var mixCmd = &cobra.Command{
	Use:     "mix",
	Short:   "Blend an image toward a flat colour",
	Example: `  colourspace-mcp mix -i in.png -o out.png --colour "#3278FE" --opacity 0.4`,
	RunE:    runMix,
}

func init() {
	rootCmd.AddCommand(mixCmd)

	mixCmd.Flags().StringP("input", "i", "", "Input image path")
	mixCmd.Flags().StringP("output", "o", "", "Output image path (format from extension)")
	mixCmd.Flags().String("colour", "#FFFFFF", "Colour to mix in (#RRGGBB, #RGB or r,g,b)")
	mixCmd.Flags().Float64("opacity", 0.5, "Weight of the mix colour (0-1)")
	_ = mixCmd.MarkFlagRequired("input")
	_ = mixCmd.MarkFlagRequired("output")

	mustBind := func(key string, name string) {
		if err := viper.BindPFlag(key, mixCmd.Flags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag: %v", err))
		}
	}

	mustBind("mix.colour", "colour")
	mustBind("mix.opacity", "opacity")
}

func runMix(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	opacity := viper.GetFloat64("mix.opacity")

	mix, err := imaging.ParseColour(viper.GetString("mix.colour"))
	if err != nil {
		return err
	}

	img, err := imaging.NewImageCache().Load(input)
	if err != nil {
		return err
	}

	out, err := imaging.MixColour(img, mix, opacity)
	if err != nil {
		return err
	}

	logger.Info("Mixing colour", "input", input, "colour", mix, "opacity", opacity)
	if err := imaging.Save(out, output); err != nil {
		return err
	}
	logger.Info("Image written", "output", output)
	return nil
}
