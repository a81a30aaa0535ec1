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

package clathrate

import (
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/cryomodel/iceshell"
)

func TestProperties(t *testing.T) {
	p, err := New().Properties(5, 260, iceshell.Clathrate)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(p.Rho, 928.07, 0.1) {
		t.Errorf("ρ = %g kg/m³, want ~928.07", p.Rho)
	}
	if !floats.EqualWithinAbs(p.Cp, 3.19*260+2150, 1e-9) {
		t.Errorf("Cp = %g J/kg/K, want %g", p.Cp, 3.19*260+2150)
	}
	if p.K != KTherm {
		t.Errorf("k = %g W/m/K, want the constant %g", p.K, KTherm)
	}
	if p.Alpha < 1.5e-4 || p.Alpha > 2.5e-4 {
		t.Errorf("α = %g 1/K, want ~2e-4", p.Alpha)
	}
}

// Conductivity does not vary with temperature, unlike the ordinary
// ices.
func TestConductivityConstant(t *testing.T) {
	e := New()
	cold, err := e.Properties(5, 150, iceshell.Clathrate)
	if err != nil {
		t.Fatal(err)
	}
	warm, err := e.Properties(5, 260, iceshell.Clathrate)
	if err != nil {
		t.Fatal(err)
	}
	if cold.K != warm.K {
		t.Errorf("k(150 K) = %g differs from k(260 K) = %g", cold.K, warm.K)
	}
}

func TestDissociation(t *testing.T) {
	// Low-pressure quadratic branch.
	want := 212.33820985 + 43.37319252 - 7.83348412
	if got := DissociationTemperature(1); !floats.EqualWithinAbs(got, want, 1e-9) {
		t.Errorf("Td(1 MPa) = %g K, want %g", got, want)
	}
	if !Stable(1, 240) {
		t.Error("clathrate should be stable at 1 MPa, 240 K")
	}
	if Stable(1, 250) {
		t.Error("clathrate should dissociate at 1 MPa, 250 K")
	}

	// High-pressure logarithmic branch.
	if got := DissociationTemperature(5); got < 277 || got > 280 {
		t.Errorf("Td(5 MPa) = %g K, want ~278.7", got)
	}
	if !Stable(5, 270) {
		t.Error("clathrate should be stable at 5 MPa, 270 K")
	}
	if Stable(5, 285) {
		t.Error("clathrate should dissociate at 5 MPa, 285 K")
	}

	// Surface pressure must not take the log of zero.
	if got := DissociationTemperature(0); got < 210 || got > 215 {
		t.Errorf("Td(0) = %g K, want the low-pressure limit ~212.3", got)
	}
}

func TestRejectsOtherPhases(t *testing.T) {
	_, err := New().Properties(5, 260, iceshell.IceI)
	if _, ok := err.(iceshell.UnsupportedPhaseError); !ok {
		t.Errorf("got %v, want UnsupportedPhaseError", err)
	}
}

func TestOutOfRange(t *testing.T) {
	e := New()
	for _, c := range []struct{ p, tK float64 }{{5, 2}, {5, 400}, {500, 260}} {
		_, err := e.Properties(c.p, c.tK, iceshell.Clathrate)
		if _, ok := err.(iceshell.OutOfRangeError); !ok {
			t.Errorf("P = %g, T = %g: got %v, want OutOfRangeError", c.p, c.tK, err)
		}
	}
}
