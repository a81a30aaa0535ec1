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
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/lnashier/viper"
	"github.com/spf13/cast"

	"github.com/cryomodel/iceshell"
)

// Scenario describes a set of shell layers to evaluate.
type Scenario struct {
	// Layers are the shell layers to evaluate, in order.
	Layers []LayerConfig
}

// LayerConfig describes one shell layer in a scenario file.
type LayerConfig struct {
	// Name is an optional label carried into the report.
	Name string
	// Phase is the phase name, e.g. "ice I" or "clathrate".
	Phase string
	// TTop and TBottom are the temperatures at the top and bottom of
	// the layer in K.
	TTop    float64
	TBottom float64
	// PMid is the pressure at the layer midpoint in MPa.
	PMid float64
	// Thickness is the layer thickness in m.
	Thickness float64
	// Gravity is the local gravitational acceleration in m/s².
	Gravity float64
}

// Layer converts the configured values to an iceshell.Layer.
func (l LayerConfig) Layer() iceshell.Layer {
	return iceshell.Layer{
		TTop:      l.TTop,
		TBottom:   l.TBottom,
		PMid:      l.PMid,
		Thickness: l.Thickness,
		Gravity:   l.Gravity,
	}
}

// ReadScenario loads a scenario TOML file and validates it.
func ReadScenario(path string) (*Scenario, error) {
	s := new(Scenario)
	if _, err := toml.DecodeFile(os.ExpandEnv(path), s); err != nil {
		return nil, fmt.Errorf("iceshell: problem reading scenario file: %v", err)
	}
	if err := checkScenario(s); err != nil {
		return nil, err
	}
	return s, nil
}

// checkScenario makes sure every configured layer is physically
// meaningful before any evaluation starts, so that a bad layer late in
// a scenario doesn't waste the earlier ones.
func checkScenario(s *Scenario) error {
	if len(s.Layers) == 0 {
		return fmt.Errorf("iceshell: the scenario contains no layers. Please fill in " +
			"the Layers configuration and try again.")
	}
	for i, l := range s.Layers {
		if _, err := iceshell.ParsePhase(l.Phase); err != nil {
			return fmt.Errorf("iceshell: layer %d: %v", i, err)
		}
		if l.TBottom <= l.TTop {
			return fmt.Errorf("iceshell: layer %d: the bottom temperature (%g K) must "+
				"exceed the top temperature (%g K)", i, l.TBottom, l.TTop)
		}
		if l.Thickness <= 0 {
			return fmt.Errorf("iceshell: layer %d: thickness must be positive, not %g",
				i, l.Thickness)
		}
		if l.Gravity <= 0 {
			return fmt.Errorf("iceshell: layer %d: gravity must be positive, not %g",
				i, l.Gravity)
		}
	}
	return nil
}

// checkOutputFile makes sure that the output file is specified and its
// directory exists, and expands any environment variables.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`iceshell: you need to specify an output file configuration variable (for example: OutputFile="iceshell_output.toml")`)
	}
	f = os.ExpandEnv(f)
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("iceshell: the OutputFile directory doesn't exist: %v", err)
	}
	return f, nil
}

// getFloat returns a configuration variable as a float64, regardless
// of whether the underlying value arrived as a float, an integer, or a
// string.
func getFloat(varName string, cfg *viper.Viper) (float64, error) {
	v, err := cast.ToFloat64E(cfg.Get(varName))
	if err != nil {
		return 0, fmt.Errorf("iceshell: configuration variable %s: %v", varName, err)
	}
	return v, nil
}
