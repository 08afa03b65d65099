package viz

import (
	"fmt"
	"image"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/mihkeluutar/simplex-practical-experiments/simplex"
)

// heatColors is the palette resolution used for tableau heatmaps.
const heatColors = 12

// tableauGrid adapts a Tableau to plotter.GridXYZ. The row axis is
// flipped so constraint row 0 renders at the top and the objective row
// at the bottom, matching the textual tableau layout.
type tableauGrid struct {
	t *simplex.Tableau
}

func (g tableauGrid) Dims() (c, r int)   { return g.t.Cols(), g.t.Rows() }
func (g tableauGrid) Z(c, r int) float64 { return g.t.At(g.t.Rows()-1-r, c) }
func (g tableauGrid) X(c int) float64    { return float64(c) }
func (g tableauGrid) Y(r int) float64    { return float64(r) }

// Frame renders the tableau as a heatmap of the given pixel size.
// step labels the plot title; pass 0 for the initial tableau.
func Frame(t *simplex.Tableau, step, width, height int) (image.Image, error) {
	p := plot.New()
	if step == 0 {
		p.Title.Text = "initial tableau"
	} else {
		p.Title.Text = fmt.Sprintf("after pivot %d", step)
	}
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"

	hm := plotter.NewHeatMap(tableauGrid{t: t}, palette.Heat(heatColors, 1))
	p.Add(hm)

	canvas := vgimg.New(vg.Points(float64(width)), vg.Points(float64(height)))
	p.Draw(draw.New(canvas))
	return canvas.Image(), nil
}
