package qubits

import (
	"fmt"

	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/units"
)

// mergeOptions overlays user options onto the defaults field by field.
// Empty strings keep the default. The radius overrides stay empty when
// unset so radius resolution can fall back to CornerRadius, and the
// connection pad map is taken as-is (per-pad merging happens at build
// time).
func mergeOptions(base, o Options) Options {
	pick := func(def, val string) string {
		if val == "" {
			return def
		}
		return val
	}

	return Options{
		PosX:          pick(base.PosX, o.PosX),
		PosY:          pick(base.PosY, o.PosY),
		Orientation:   pick(base.Orientation, o.Orientation),
		PadGap:        pick(base.PadGap, o.PadGap),
		InductorWidth: pick(base.InductorWidth, o.InductorWidth),
		PadWidth:      pick(base.PadWidth, o.PadWidth),
		PadHeight:     pick(base.PadHeight, o.PadHeight),
		PocketWidth:   pick(base.PocketWidth, o.PocketWidth),
		PocketHeight:  pick(base.PocketHeight, o.PocketHeight),
		CornerRadius:  pick(base.CornerRadius, o.CornerRadius),

		PadCornerRadius:       o.PadCornerRadius,
		PocketCornerRadius:    o.PocketCornerRadius,
		ConnectorCornerRadius: o.ConnectorCornerRadius,

		ConnectionPads: o.ConnectionPads,
	}
}

// mergeConnectionPad overlays one connection pad record onto the
// defaults field by field.
func mergeConnectionPad(base, o ConnectionPadOptions) ConnectionPadOptions {
	pick := func(def, val string) string {
		if val == "" {
			return def
		}
		return val
	}

	return ConnectionPadOptions{
		PadGap:       pick(base.PadGap, o.PadGap),
		PadWidth:     pick(base.PadWidth, o.PadWidth),
		PadHeight:    pick(base.PadHeight, o.PadHeight),
		PadCPWShift:  pick(base.PadCPWShift, o.PadCPWShift),
		PadCPWExtent: pick(base.PadCPWExtent, o.PadCPWExtent),
		CPWWidth:     pick(base.CPWWidth, o.CPWWidth),
		CPWGap:       pick(base.CPWGap, o.CPWGap),
		CPWExtend:    pick(base.CPWExtend, o.CPWExtend),
		PocketExtent: pick(base.PocketExtent, o.PocketExtent),
		PocketRise:   pick(base.PocketRise, o.PocketRise),
		LocW:         pick(base.LocW, o.LocW),
		LocH:         pick(base.LocH, o.LocH),
	}
}

// params are the top-level options resolved to numeric values in mm
// (orientation in degrees).
type params struct {
	posX, posY, orientation float64

	padGap, inductorWidth     float64
	padWidth, padHeight       float64
	pocketWidth, pocketHeight float64

	padRadius, pocketRadius, connectorRadius float64
}

// connectionPadParams are one merged connection pad record resolved to
// numeric values.
type connectionPadParams struct {
	padGap, padWidth, padHeight float64
	padCPWShift, padCPWExtent   float64
	cpwWidth, cpwGap, cpwExtend float64
	pocketExtent, pocketRise    float64
	locW, locH                  float64
}

// fieldParser accumulates the first parse error while resolving a
// batch of option fields.
type fieldParser struct {
	err error
}

func (fp *fieldParser) length(name, s string) float64 {
	if fp.err != nil {
		return 0
	}
	v, err := units.ParseLength(s)
	if err != nil {
		fp.err = fmt.Errorf("%s: %w", name, err)
	}
	return v
}

func (fp *fieldParser) number(name, s string) float64 {
	if fp.err != nil {
		return 0
	}
	v, err := units.ParseNumber(s)
	if err != nil {
		fp.err = fmt.Errorf("%s: %w", name, err)
	}
	return v
}

func (q *TransmonPocket6) parseParams() (params, error) {
	o := q.opts
	var fp fieldParser

	p := params{
		posX:          fp.length("pos_x", o.PosX),
		posY:          fp.length("pos_y", o.PosY),
		orientation:   fp.number("orientation", o.Orientation),
		padGap:        fp.length("pad_gap", o.PadGap),
		inductorWidth: fp.length("inductor_width", o.InductorWidth),
		padWidth:      fp.length("pad_width", o.PadWidth),
		padHeight:     fp.length("pad_height", o.PadHeight),
		pocketWidth:   fp.length("pocket_width", o.PocketWidth),
		pocketHeight:  fp.length("pocket_height", o.PocketHeight),
	}

	// Each shape class takes the global corner radius unless overridden.
	base := fp.length("corner_radius", o.CornerRadius)
	p.padRadius = resolveRadius(&fp, "pad_corner_radius", base, o.PadCornerRadius)
	p.pocketRadius = resolveRadius(&fp, "pocket_corner_radius", base, o.PocketCornerRadius)
	p.connectorRadius = resolveRadius(&fp, "connector_corner_radius", base, o.ConnectorCornerRadius)

	if fp.err != nil {
		return params{}, fp.err
	}
	return p, nil
}

func resolveRadius(fp *fieldParser, name string, global float64, override string) float64 {
	if override == "" {
		return global
	}
	return fp.length(name, override)
}

func parseConnectionPad(o ConnectionPadOptions) (connectionPadParams, error) {
	var fp fieldParser

	pc := connectionPadParams{
		padGap:       fp.length("pad_gap", o.PadGap),
		padWidth:     fp.length("pad_width", o.PadWidth),
		padHeight:    fp.length("pad_height", o.PadHeight),
		padCPWShift:  fp.length("pad_cpw_shift", o.PadCPWShift),
		padCPWExtent: fp.length("pad_cpw_extent", o.PadCPWExtent),
		cpwWidth:     fp.length("cpw_width", o.CPWWidth),
		cpwGap:       fp.length("cpw_gap", o.CPWGap),
		cpwExtend:    fp.length("cpw_extend", o.CPWExtend),
		pocketExtent: fp.length("pocket_extent", o.PocketExtent),
		pocketRise:   fp.length("pocket_rise", o.PocketRise),
		locW:         fp.number("loc_W", o.LocW),
		locH:         fp.number("loc_H", o.LocH),
	}

	if fp.err != nil {
		return connectionPadParams{}, fp.err
	}
	return pc, nil
}
