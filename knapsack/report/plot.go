package report

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/baldhumanity/knapsack-ga/knapsack"
)

const (
	plotWidth  = 12 * vg.Inch
	plotHeight = 6 * vg.Inch
)

// FitnessPlot draws best (solid) and mean (dashed) fitness against the
// 1-based generation number.
func FitnessPlot(h knapsack.History, title string) (*plot.Plot, error) {
	if len(h.BestFitness) != len(h.MeanFitness) {
		return nil, fmt.Errorf("history is inconsistent: %d best values, %d mean values", len(h.BestFitness), len(h.MeanFitness))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Fitness (value)"
	p.Add(plotter.NewGrid())

	bestPts := make(plotter.XYs, h.Len())
	meanPts := make(plotter.XYs, h.Len())
	for i := range bestPts {
		bestPts[i].X = float64(i + 1)
		bestPts[i].Y = h.BestFitness[i]
		meanPts[i].X = float64(i + 1)
		meanPts[i].Y = h.MeanFitness[i]
	}

	bestLine, err := plotter.NewLine(bestPts)
	if err != nil {
		return nil, err
	}
	bestLine.LineStyle.Width = vg.Points(2)
	bestLine.LineStyle.Color = color.RGBA{B: 255, A: 255}

	meanLine, err := plotter.NewLine(meanPts)
	if err != nil {
		return nil, err
	}
	meanLine.LineStyle.Width = vg.Points(2)
	meanLine.LineStyle.Color = color.RGBA{R: 255, A: 255}
	meanLine.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}

	p.Add(bestLine, meanLine)
	p.Legend.Add("best fitness", bestLine)
	p.Legend.Add("mean fitness", meanLine)
	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

// SaveFitnessPlot renders the history to an image file; the format follows the extension.
func SaveFitnessPlot(h knapsack.History, title, path string) error {
	p, err := FitnessPlot(h, title)
	if err != nil {
		return err
	}
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("failed to save plot '%s': %w", path, err)
	}
	return nil
}

// WriteFitnessPlot renders the history as PNG to w.
func WriteFitnessPlot(w io.Writer, h knapsack.History, title string) error {
	p, err := FitnessPlot(h, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(plotWidth, plotHeight, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
