package render

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/san-kum/quantstat/internal/analysis"
	"github.com/san-kum/quantstat/internal/quant"
	"github.com/san-kum/quantstat/internal/twoparticle"
)

const (
	TitleClassical = "Clássico"
	TitleBosons    = "Quântico (Bósons)"
	TitleFermions  = "Quântico (Férmions)"
	LabelX1        = "x1"
	LabelX2        = "x2"

	paletteSize = 255
	barFraction = 0.15
)

// gridField adapts a density over a quant.Grid to plotter.GridXYZ. Columns
// follow x1 and rows follow x2, so row 0 is drawn at the bottom.
type gridField struct {
	z      mat.Matrix
	xs, ys quant.Vector
}

func (g gridField) Dims() (c, r int) {
	r, c = g.z.Dims()
	return c, r
}

func (g gridField) Z(c, r int) float64 { return g.z.At(r, c) }
func (g gridField) X(c int) float64    { return g.xs[c] }
func (g gridField) Y(r int) float64    { return g.ys[r] }

// Panel is one titled density with its heat map and colour bar plots.
type Panel struct {
	Title string
	Heat  *plot.Plot
	Bar   *plot.Plot
}

// FieldPanels builds the classical, bosonic and fermionic panels in that
// order. Every colour range starts at zero.
func FieldPanels(f *twoparticle.Fields) []Panel {
	xs, ys := analysis.Axes(f.Grid)
	fields := []struct {
		title string
		z     *mat.Dense
	}{
		{TitleClassical, f.Classical},
		{TitleBosons, f.Bosons},
		{TitleFermions, f.Fermions},
	}

	panels := make([]Panel, len(fields))
	for i, fd := range fields {
		panels[i] = newPanel(fd.title, gridField{z: fd.z, xs: xs, ys: ys})
	}
	return panels
}

func newPanel(title string, g gridField) Panel {
	top := mat.Max(g.z)
	if top <= 0 {
		top = 1
	}
	cm := moreland.Kindlmann()
	cm.SetMin(0)
	cm.SetMax(top)

	hm := plotter.NewHeatMap(g, cm.Palette(paletteSize))
	hm.Min, hm.Max = 0, top

	heat := plot.New()
	heat.Title.Text = title
	heat.X.Label.Text = LabelX1
	heat.Y.Label.Text = LabelX2
	heat.Add(hm)

	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: cm})
	bar.HideY()

	return Panel{Title: title, Heat: heat, Bar: bar}
}

// SaveFields draws the three panels side by side into one figure.
func SaveFields(f *twoparticle.Fields, path, format string) error {
	const w, h = 18 * vg.Inch, 6 * vg.Inch

	c, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return err
	}
	dc := draw.New(c)

	panels := FieldPanels(f)
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(panels),
		PadX:      vg.Millimeter * 6,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	for i, p := range panels {
		col := tiles.At(dc, i, 0)
		height := col.Max.Y - col.Min.Y
		barH := height * barFraction
		p.Heat.Draw(draw.Crop(col, 0, 0, barH, 0))
		p.Bar.Draw(draw.Crop(col, 0, 0, 0, -(height - barH)))
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}
