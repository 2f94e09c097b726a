/*
 * plot.go, part of topsynth.
 *
 * Copyright 2026 The topsynth Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package check

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotDeviations saves a histogram of the bond-length deviations in G, with the
// given number of bins, to filename. The format is taken from the extension.
func PlotDeviations(G *Geometry, filename string, bins int) error {
	if len(G.Deviations) == 0 {
		return fmt.Errorf("no bonds to plot")
	}
	if bins < 1 {
		bins = 1
	}
	p := plot.New()
	p.Title.Text = "Bond length deviations"
	p.X.Label.Text = "length - equilibrium"
	p.Y.Label.Text = "bonds"
	p.Add(plotter.NewGrid())
	h, err := plotter.NewHist(plotter.Values(G.Devs()), bins)
	if err != nil {
		return err
	}
	p.Add(h)
	return p.Save(5*vg.Inch, 4*vg.Inch, filename)
}
