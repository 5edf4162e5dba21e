package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/colourspace-mcp/internal/imaging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the colour of a pixel in every colour model as JSON",
	RunE:  runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().StringP("input", "i", "", "Input image path")
	sampleCmd.Flags().IntP("x", "x", 0, "X coordinate (0-based, from left)")
	sampleCmd.Flags().IntP("y", "y", 0, "Y coordinate (0-based, from top)")
	sampleCmd.Flags().Bool("pretty", true, "Indent the JSON output")
	_ = sampleCmd.MarkFlagRequired("input")

	if err := viper.BindPFlag("sample.pretty", sampleCmd.Flags().Lookup("pretty")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func runSample(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	input, _ := cmd.Flags().GetString("input")
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")

	img, err := imaging.NewImageCache().Load(input)
	if err != nil {
		return err
	}

	result, err := imaging.SampleColor(img, x, y)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if viper.GetBool("sample.pretty") {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}
