package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/qds"
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Design file operations",
	Long:  `Commands for working with .qds design files`,
}

var designInfoCmd = &cobra.Command{
	Use:   "info <design_file>",
	Short: "Show design file contents",
	Long: `Display a summary of a .qds design file.

Lists the components, geometry table sizes, pins, and the overall
bounding box of the layout.`,
	Args: cobra.ExactArgs(1),
	RunE: runDesignInfo,
}

func init() {
	rootCmd.AddCommand(designCmd)
	designCmd.AddCommand(designInfoCmd)
}

func runDesignInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	d, err := qds.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("error parsing design: %w", err)
	}

	fmt.Printf("Design: %s (chip %q)\n", d.Name, d.Chip)
	fmt.Printf("  Polys:     %d\n", len(d.Polys))
	fmt.Printf("  Paths:     %d\n", len(d.Paths))
	fmt.Printf("  Junctions: %d\n", len(d.Junctions))
	fmt.Printf("  Pins:      %d\n", len(d.Pins))

	bbox := d.BoundingBox()
	if !bbox.IsEmpty() {
		fmt.Printf("  Extent: %.4f x %.4f mm, center (%.4f, %.4f)\n",
			bbox.Width(), bbox.Height(), bbox.Center().X, bbox.Center().Y)
	}

	names := d.ComponentNames()
	fmt.Printf("\nComponents (%d):\n", len(names))
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}

	if len(d.Pins) > 0 {
		fmt.Printf("\nPins:\n")
		for _, pin := range d.Pins {
			fmt.Printf("  %s.%s: tip (%.4f, %.4f) normal (%.2f, %.2f) width %.4f mm\n",
				pin.Component, pin.Name,
				pin.Tip.X, pin.Tip.Y,
				pin.Normal.X, pin.Normal.Y,
				pin.Width)
		}
	}

	return nil
}
