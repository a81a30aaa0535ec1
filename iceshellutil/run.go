/*
Copyright © 2021 the IceShell authors.
This file is part of IceShell.

IceShell is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

IceShell is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with IceShell.  If not, see <http://www.gnu.org/licenses/>.
*/

package iceshellutil

import (
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/cryomodel/iceshell"
)

var log *logrus.Logger

func init() {
	log = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
	})
}

// Result is one row of a scenario report.
type Result struct {
	Name       string
	Phase      string
	Convecting bool
	Downgraded bool
	HeatFlux   float64 // [W/m²]
	TCore      float64 // [K]
	UpperBL    float64 // [m]
	LowerBL    float64 // [m]
	Viscosity  float64 // [Pa s]
	Ra         float64
}

// Report is the TOML document written after a scenario run.
type Report struct {
	Version string
	Results []Result
}

// Evaluate runs the convection-regime calculation for every layer in
// the scenario. The first failing layer aborts the run; the error
// names the layer.
func Evaluate(s *Scenario, provider iceshell.PropertyProvider) ([]Result, error) {
	results := make([]Result, 0, len(s.Layers))
	for i, lc := range s.Layers {
		phase, err := iceshell.ParsePhase(lc.Phase)
		if err != nil {
			return nil, fmt.Errorf("iceshell: layer %d: %v", i, err)
		}
		r, err := iceshell.Convect(lc.Layer(), phase, provider)
		if err != nil {
			return nil, fmt.Errorf("iceshell: layer %d (%s): %v", i, lc.Name, err)
		}
		log.WithFields(logrus.Fields{
			"layer":      lc.Name,
			"phase":      lc.Phase,
			"convecting": r.Convecting,
			"downgraded": r.Downgraded,
			"heatFlux":   fmt.Sprintf("%v", r.HeatFluxUnits()),
			"Ra":         r.Ra,
		}).Info("evaluated layer")
		results = append(results, Result{
			Name:       lc.Name,
			Phase:      lc.Phase,
			Convecting: r.Convecting,
			Downgraded: r.Downgraded,
			HeatFlux:   r.HeatFlux,
			TCore:      r.TCore,
			UpperBL:    r.UpperBL,
			LowerBL:    r.LowerBL,
			Viscosity:  r.Viscosity,
			Ra:         r.Ra,
		})
	}
	return results, nil
}

// WriteReport encodes results as a TOML report.
func WriteReport(w io.Writer, results []Result) error {
	if err := toml.NewEncoder(w).Encode(Report{
		Version: iceshell.Version,
		Results: results,
	}); err != nil {
		return fmt.Errorf("iceshell: problem writing report: %v", err)
	}
	return nil
}

// SweepPoint is the regime at one shell thickness of a sweep.
type SweepPoint struct {
	Thickness  float64 // [m]
	HeatFlux   float64 // [W/m²]
	Ra         float64
	Convecting bool
}

// Sweep evaluates the same thermal state across n evenly spaced
// thicknesses between minH and maxH and reports the regime at each,
// which locates the thickness at which a thickening shell starts to
// convect.
func Sweep(l iceshell.Layer, phase iceshell.Phase, provider iceshell.PropertyProvider,
	minH, maxH float64, n int) ([]SweepPoint, error) {
	if n < 2 {
		return nil, fmt.Errorf("iceshell: a sweep needs at least 2 points, not %d", n)
	}
	if minH <= 0 || maxH <= minH {
		return nil, fmt.Errorf("iceshell: invalid sweep thickness range [%g, %g]", minH, maxH)
	}
	points := make([]SweepPoint, n)
	for i, h := range floats.Span(make([]float64, n), minH, maxH) {
		l.Thickness = h
		r, err := iceshell.Convect(l, phase, provider)
		if err != nil {
			return nil, fmt.Errorf("iceshell: sweep at thickness %g m: %v", h, err)
		}
		points[i] = SweepPoint{
			Thickness:  h,
			HeatFlux:   r.HeatFlux,
			Ra:         r.Ra,
			Convecting: r.Convecting,
		}
	}
	return points, nil
}
