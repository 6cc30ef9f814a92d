/*
DESCRIPTION
  curveplot.go provides plotting of fit record data, built curves and entropy
  histories to PNG files.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean)

  It is free software: you can redistribute it and/or modify them
  under the terms of the GNU General Public License as published by the
  Free Software Foundation, either version 3 of the License, or (at your
  option) any later version.

  It is distributed in the hope that it will be useful, but WITHOUT
  ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
  FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License
  for more details.

  You should have received a copy of the GNU General Public License
  in gpl.txt. If not, see http://www.gnu.org/licenses.
*/

// Package curveplot plots fit record data against built curves, and entropy
// histories, to PNG files.
package curveplot

import (
	"errors"
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrLength is returned when paired x and y slices differ in length.
var ErrLength = errors.New("x and y lengths differ")

const plotSize = 15 * vg.Centimeter

// Curve plots the raw data points (dataX, dataY) as a scatter with the built
// curve (x, y) superimposed as a line, and saves it to dir/name.png with name
// as the title. Either set may be empty.
func Curve(dir, name string, dataX, dataY, x, y []float64) error {
	if len(dataX) != len(dataY) || len(x) != len(y) {
		return ErrLength
	}

	err := plotToFile(
		filepath.Join(dir, name+".png"),
		name,
		"x",
		"y",
		func(p *plot.Plot) error {
			var args []interface{}
			if len(dataX) > 0 {
				s, err := plotter.NewScatter(plotterXY(dataX, dataY))
				if err != nil {
					return fmt.Errorf("could not create data scatter: %w", err)
				}
				p.Add(s)
				p.Legend.Add("data", s)
			}
			if len(x) > 0 {
				args = append(args, "fit", plotterXY(x, y))
			}
			return plotutil.AddLines(p, args...)
		},
	)
	if err != nil {
		return fmt.Errorf("could not plot curve: %w", err)
	}
	return nil
}

// Entropy plots an entropy history against attempt number and saves it to
// dir/name-entropy.png, titled "name entropy".
func Entropy(dir, name string, history []float64) error {
	attempts := make([]float64, len(history))
	for i := range attempts {
		attempts[i] = float64(i)
	}

	err := plotToFile(
		filepath.Join(dir, name+"-entropy.png"),
		name+" entropy",
		"Attempt",
		"Entropy",
		func(p *plot.Plot) error {
			return plotutil.AddLinePoints(p, "entropy", plotterXY(attempts, history))
		},
	)
	if err != nil {
		return fmt.Errorf("could not plot entropy history: %w", err)
	}
	return nil
}

// plotToFile creates a plot with a specified title and x&y titles using the
// provided draw function, and then saves to the PNG file at path.
func plotToFile(path, title, xTitle, yTitle string, draw func(*plot.Plot) error) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xTitle
	p.Y.Label.Text = yTitle

	err := draw(p)
	if err != nil {
		return fmt.Errorf("could not draw plot contents: %w", err)
	}

	if err := p.Save(plotSize, plotSize, path); err != nil {
		return fmt.Errorf("could not save plot: %w", err)
	}
	return nil
}

// plotterXY provides a plotter.XYs type value based on the given x and y data.
func plotterXY(x, y []float64) plotter.XYs {
	xy := make(plotter.XYs, len(x))
	for i := range x {
		xy[i].X = x[i]
		xy[i].Y = y[i]
	}
	return xy
}
