package cmd

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/spf13/cobra"

	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/design"
	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/geom"
	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/qds"
	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/render"
)

var viewCmd = &cobra.Command{
	Use:   "view <design_file>",
	Short: "View a design file in the interactive viewer",
	Long: `Opens a .qds design file in an interactive Gio-based viewer with pan,
zoom, and rotation controls.

Controls:
  Left Click / R    - Rotate 90°
  Right Click / F   - Flip view
  Scroll Wheel      - Zoom in/out
  Space             - Fit design to window
  T                 - Cycle color theme
  Q / Escape        - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	filename := args[0]

	d, err := qds.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("error parsing design: %w", err)
	}

	bbox := d.BoundingBox()
	fmt.Printf("Loaded %s: %d polys, %d paths, %d junctions, %d pins\n",
		filename, len(d.Polys), len(d.Paths), len(d.Junctions), len(d.Pins))
	if !bbox.IsEmpty() {
		fmt.Printf("  Extent: %.4f x %.4f mm\n", bbox.Width(), bbox.Height())
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("OpenQuantumEDA - " + filename))
		w.Option(app.Size(unit.Dp(1000), unit.Dp(800)))

		if err := runViewerWindow(w, d, bbox); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

func runViewerWindow(w *app.Window, d *design.Design, bbox geom.BoundingBox) error {
	camera := render.NewCamera(1000, 800)
	if !bbox.IsEmpty() {
		camera.Fit(bbox)
	}

	var ops op.Ops

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			ops.Reset()

			gtx := layout.Context{
				Ops:         &ops,
				Constraints: layout.Exact(e.Size),
				Metric:      e.Metric,
				Now:         e.Now,
				Source:      e.Source,
			}

			camera.UpdateScreenSize(e.Size.X, e.Size.Y)

			for {
				ev, ok := gtx.Event(key.Filter{})
				if !ok {
					break
				}

				if ke, ok := ev.(key.Event); ok {
					if ke.State == key.Press {
						if handleKeyPress(ke.Name, camera, bbox) {
							return nil
						}
						w.Invalidate()
					}
				}
			}

			for {
				ev, ok := gtx.Event(pointer.Filter{
					Kinds: pointer.Press | pointer.Scroll,
				})
				if !ok {
					break
				}

				if pe, ok := ev.(pointer.Event); ok {
					switch pe.Kind {
					case pointer.Press:
						if pe.Buttons == pointer.ButtonPrimary {
							camera.Rotate(90)
							w.Invalidate()
						} else if pe.Buttons == pointer.ButtonSecondary {
							camera.Flip()
							w.Invalidate()
						}
					case pointer.Scroll:
						zoomFactor := 1.0 + float64(pe.Scroll.Y)*0.1
						camera.ZoomAt(float64(pe.Position.X), float64(pe.Position.Y), zoomFactor)
						w.Invalidate()
					}
				}
			}

			render.RenderDesign(gtx, camera, d)

			e.Frame(&ops)
		}
	}
}

func handleKeyPress(k key.Name, camera *render.Camera, bbox geom.BoundingBox) bool {
	switch k {
	case key.NameEscape, "Q":
		return true
	case "F":
		camera.Flip()
	case "R":
		camera.Rotate(90)
	case key.NameLeftArrow:
		camera.Rotate(-90)
	case "T":
		render.SetTheme((render.CurrentTheme + 1) % 3)
	case key.NameSpace:
		if !bbox.IsEmpty() {
			camera.Fit(bbox)
		}
	}
	return false
}
