package visualizer

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/menulens/menulens-cli/internal/stats"
)

const (
	tileWidth  = 6 * vg.Inch
	tileHeight = 4 * vg.Inch
)

// RenderStatsChart draws one grouped bar chart per report (one bar group per
// nutrient, one bar per metric) stacked vertically, and writes the result to
// path as a PNG. An existing file at path is overwritten.
func RenderStatsChart(reports []*stats.StatisticsReport, metrics []string, path string) error {
	if metrics == nil {
		metrics = MetricNames
	}
	if len(reports) == 0 {
		return fmt.Errorf("render stats chart: no reports")
	}

	plots := make([][]*plot.Plot, len(reports))
	for i, r := range reports {
		values := make([][]float64, len(metrics))
		for j, metric := range metrics {
			row := make([]float64, len(r.Columns))
			for k, col := range r.Columns {
				row[k] = metricValue(r.Stats[col], metric)
			}
			values[j] = row
		}
		p, err := groupedBarPlot(
			fmt.Sprintf("%s - NUTRITIONAL STATISTICS", strings.ToUpper(r.Dataset)),
			r.Columns, metrics, values)
		if err != nil {
			return fmt.Errorf("render stats chart: %w", err)
		}
		plots[i] = []*plot.Plot{p}
	}
	return renderTiles(plots, len(reports), 1, path)
}

// RenderComparisonChart draws one grouped bar chart per metric (one bar group
// per nutrient, one bar per dataset) side by side, and writes the result to
// path as a PNG. An existing file at path is overwritten.
func RenderComparisonChart(r *stats.ComparisonReport, metrics []string, path string) error {
	if metrics == nil {
		metrics = MetricNames
	}
	row := make([]*plot.Plot, len(metrics))
	for i, metric := range metrics {
		left := make([]float64, len(r.Columns))
		right := make([]float64, len(r.Columns))
		for k, col := range r.Columns {
			pair := r.Stats[col]
			left[k] = metricValue(pair.Left, metric)
			right[k] = metricValue(pair.Right, metric)
		}
		p, err := groupedBarPlot(
			fmt.Sprintf("%s COMPARISON", strings.ToUpper(metric)),
			r.Columns, []string{r.Left, r.Right}, [][]float64{left, right})
		if err != nil {
			return fmt.Errorf("render comparison chart: %w", err)
		}
		row[i] = p
	}
	return renderTiles([][]*plot.Plot{row}, 1, len(metrics), path)
}

// groupedBarPlot builds a single plot with len(groups) bar groups on the X
// axis and one offset bar per series within each group.
func groupedBarPlot(title string, groups, seriesNames []string, values [][]float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Nutrients"
	p.Y.Label.Text = "Value"

	n := len(seriesNames)
	width := vg.Points(40) / vg.Length(n)
	for i, name := range seriesNames {
		vals := make(plotter.Values, len(values[i]))
		for k, v := range values[i] {
			if math.IsNaN(v) {
				v = 0
			}
			vals[k] = v
		}
		bars, err := plotter.NewBarChart(vals, width)
		if err != nil {
			return nil, fmt.Errorf("bar chart %q: %w", name, err)
		}
		bars.LineStyle.Width = 0
		bars.Color = plotutil.Color(i)
		bars.Offset = width * vg.Length(float64(i)-float64(n-1)/2)
		p.Add(bars)
		p.Legend.Add(name, bars)
	}
	p.Legend.Top = true
	p.NominalX(groups...)
	return p, nil
}

// renderTiles lays the plots out on a rows x cols grid and writes a single
// PNG. The write is atomic: a temp file in the target directory is renamed
// over path, so a failed render never leaves a partial file behind.
func renderTiles(plots [][]*plot.Plot, rows, cols int, path string) error {
	img := vgimg.New(vg.Length(cols)*tileWidth, vg.Length(rows)*tileHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows, Cols: cols,
		PadX: vg.Millimeter * 2, PadY: vg.Millimeter * 2,
		PadTop: vg.Millimeter, PadBottom: vg.Millimeter,
		PadLeft: vg.Millimeter, PadRight: vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".chart-*.png")
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write chart: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write chart: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save chart to %s: %w", path, err)
	}
	return nil
}
