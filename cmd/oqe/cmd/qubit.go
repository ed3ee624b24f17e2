package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/design"
	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/qds"
	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/qlibrary/qubits"
)

var qubitCmd = &cobra.Command{
	Use:   "qubit",
	Short: "Parametric qubit generation",
	Long:  `Commands for generating qubit layouts from parametric templates`,
}

var (
	qubitName         string
	qubitOutput       string
	qubitDesignName   string
	qubitPosX         string
	qubitPosY         string
	qubitOrientation  string
	qubitPadWidth     string
	qubitPadHeight    string
	qubitPadGap       string
	qubitPocketWidth  string
	qubitPocketHeight string
	qubitCornerRadius string
	qubitConnectors   []string
)

var qubitTransmonCmd = &cobra.Command{
	Use:   "transmon",
	Short: "Generate a transmon pocket qubit",
	Long: `Generates a transmon pocket qubit with up to six connection pads
and writes it to a .qds design file.

Dimensions accept a unit suffix (um, mm, nm, mil, in); bare numbers
are millimeters. Connection pads are placed with repeated --connector
flags of the form name:locW,locH where locW is -1, 0 or +1 (left,
center, right) and locH is -1 or +1 (bottom, top).

Examples:
  oqe qubit transmon -o q1.qds
  oqe qubit transmon --corner-radius 20um -o q1.qds
  oqe qubit transmon --connector bus:+1,+1 --connector readout:0,-1 -o q1.qds`,
	Args: cobra.NoArgs,
	RunE: runQubitTransmon,
}

func init() {
	rootCmd.AddCommand(qubitCmd)
	qubitCmd.AddCommand(qubitTransmonCmd)

	flags := qubitTransmonCmd.Flags()
	flags.StringVar(&qubitName, "name", "Q1", "component name")
	flags.StringVarP(&qubitOutput, "output", "o", "transmon.qds", "output .qds file")
	flags.StringVar(&qubitDesignName, "design", "design", "design name")
	flags.StringVar(&qubitPosX, "pos-x", "", "center X position (default 0)")
	flags.StringVar(&qubitPosY, "pos-y", "", "center Y position (default 0)")
	flags.StringVar(&qubitOrientation, "orientation", "", "rotation in degrees (default 0)")
	flags.StringVar(&qubitPadWidth, "pad-width", "", "charge island pad width (default 455um)")
	flags.StringVar(&qubitPadHeight, "pad-height", "", "charge island pad height (default 90um)")
	flags.StringVar(&qubitPadGap, "pad-gap", "", "gap between the two pads (default 30um)")
	flags.StringVar(&qubitPocketWidth, "pocket-width", "", "pocket cutout width (default 650um)")
	flags.StringVar(&qubitPocketHeight, "pocket-height", "", "pocket cutout height (default 650um)")
	flags.StringVar(&qubitCornerRadius, "corner-radius", "", "corner rounding radius (default 0, sharp)")
	flags.StringArrayVar(&qubitConnectors, "connector", nil, "connection pad as name:locW,locH (repeatable)")
}

func runQubitTransmon(cmd *cobra.Command, args []string) error {
	opts := qubits.DefaultOptions()
	opts.PosX = qubitPosX
	opts.PosY = qubitPosY
	opts.Orientation = qubitOrientation
	opts.PadWidth = qubitPadWidth
	opts.PadHeight = qubitPadHeight
	opts.PadGap = qubitPadGap
	opts.PocketWidth = qubitPocketWidth
	opts.PocketHeight = qubitPocketHeight
	opts.CornerRadius = qubitCornerRadius

	if len(qubitConnectors) > 0 {
		opts.ConnectionPads = make(map[string]qubits.ConnectionPadOptions)
		for _, spec := range qubitConnectors {
			name, pad, err := parseConnectorSpec(spec)
			if err != nil {
				return err
			}
			opts.ConnectionPads[name] = pad
		}
	}

	d := design.NewDesign(qubitDesignName)
	if err := d.Add(qubits.New(qubitName, &opts)); err != nil {
		return fmt.Errorf("error building qubit: %w", err)
	}

	for _, warning := range d.Warnings {
		fmt.Printf("warning: %s\n", warning)
	}

	if err := qds.WriteFile(qubitOutput, d); err != nil {
		return fmt.Errorf("error writing design: %w", err)
	}

	bbox := d.BoundingBox()
	fmt.Printf("Wrote %s: %d polys, %d paths, %d pins, %.4f x %.4f mm\n",
		qubitOutput, len(d.Polys), len(d.Paths), len(d.Pins),
		bbox.Width(), bbox.Height())
	return nil
}

// parseConnectorSpec splits a name:locW,locH flag value.
func parseConnectorSpec(spec string) (string, qubits.ConnectionPadOptions, error) {
	name, locs, ok := strings.Cut(spec, ":")
	if !ok || name == "" {
		return "", qubits.ConnectionPadOptions{}, fmt.Errorf("connector %q: want name:locW,locH", spec)
	}
	locW, locH, ok := strings.Cut(locs, ",")
	if !ok {
		return "", qubits.ConnectionPadOptions{}, fmt.Errorf("connector %q: want name:locW,locH", spec)
	}
	return name, qubits.ConnectionPadOptions{LocW: locW, LocH: locH}, nil
}
