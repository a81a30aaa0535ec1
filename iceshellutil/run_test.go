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
	"bytes"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/cryomodel/iceshell"
	"github.com/cryomodel/iceshell/eos"
)

func TestEvaluateScenario(t *testing.T) {
	s, err := ReadScenario("testdata/scenario.toml")
	if err != nil {
		t.Fatal(err)
	}
	results, err := Evaluate(s, eos.New())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	// The warm thick ice I shell convects; the clathrate lid, with its
	// much higher critical Rayleigh number, conducts.
	if !results[0].Convecting {
		t.Errorf("layer %q should convect (Ra = %g)", results[0].Name, results[0].Ra)
	}
	if results[1].Convecting || results[1].Downgraded {
		t.Errorf("layer %q should conduct (Ra = %g)", results[1].Name, results[1].Ra)
	}
	for _, r := range results {
		if r.HeatFlux <= 0 {
			t.Errorf("layer %q: heat flux %g", r.Name, r.HeatFlux)
		}
	}
}

func TestEvaluateAbortsOnBadLayer(t *testing.T) {
	s := &Scenario{Layers: []LayerConfig{{
		Name: "impossible", Phase: "water",
		TTop: 100, TBottom: 260, PMid: 5, Thickness: 20000, Gravity: 1.3,
	}}}
	if _, err := Evaluate(s, eos.New()); err == nil {
		t.Error("a water layer should abort the run")
	}
}

func TestWriteReportRoundTrip(t *testing.T) {
	in := []Result{{
		Name: "outer shell", Phase: "ice I", Convecting: true,
		HeatFlux: 0.02, TCore: 261.5, UpperBL: 20000, LowerBL: 1050,
		Viscosity: 2.4e14, Ra: 1.5e6,
	}}
	var buf bytes.Buffer
	if err := WriteReport(&buf, in); err != nil {
		t.Fatal(err)
	}
	var out Report
	if _, err := toml.Decode(buf.String(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Version != iceshell.Version {
		t.Errorf("report version %q, want %q", out.Version, iceshell.Version)
	}
	if len(out.Results) != 1 || out.Results[0] != in[0] {
		t.Errorf("round-tripped results %+v, want %+v", out.Results, in)
	}
}

func TestSweepFindsConvectionOnset(t *testing.T) {
	l := iceshell.Layer{TTop: 100, TBottom: 270, PMid: 5, Gravity: 1.3}
	points, err := Sweep(l, iceshell.IceI, eos.New(), 1000, 50000, 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 50 {
		t.Fatalf("got %d points, want 50", len(points))
	}
	if points[0].Convecting {
		t.Errorf("a 1 km shell should conduct (Ra = %g)", points[0].Ra)
	}
	if !points[len(points)-1].Convecting {
		t.Errorf("a 50 km shell should convect (Ra = %g)", points[len(points)-1].Ra)
	}
	// The Rayleigh number grows with the cube of thickness.
	for i := 1; i < len(points); i++ {
		if points[i].Ra <= points[i-1].Ra {
			t.Fatalf("Ra not increasing at thickness %g m", points[i].Thickness)
		}
	}
}

func TestSweepValidation(t *testing.T) {
	l := iceshell.Layer{TTop: 100, TBottom: 270, PMid: 5, Gravity: 1.3}
	if _, err := Sweep(l, iceshell.IceI, eos.New(), 1000, 50000, 1); err == nil {
		t.Error("a single-point sweep should fail")
	}
	if _, err := Sweep(l, iceshell.IceI, eos.New(), 5000, 1000, 10); err == nil {
		t.Error("an inverted thickness range should fail")
	}
}
