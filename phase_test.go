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

package iceshell

import (
	"math"
	"testing"
)

func TestParsePhase(t *testing.T) {
	for _, phase := range append(Phases(), Water) {
		got, err := ParsePhase(phase.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != phase {
			t.Errorf("ParsePhase(%q) = %v, want %v", phase.String(), got, phase)
		}
	}
	if p, err := ParsePhase("  Ice V "); err != nil || p != IceV {
		t.Errorf("ParsePhase with padding = %v, %v; want ice V", p, err)
	}
	if _, err := ParsePhase("ice IX"); err == nil {
		t.Error("unknown phase name should fail")
	}
}

func TestPhaseTable(t *testing.T) {
	if got := len(Phases()); got != 6 {
		t.Fatalf("Phases() has %d entries, want 6", got)
	}
	for _, phase := range Phases() {
		eAct, err := ActivationEnergy(phase)
		if err != nil {
			t.Fatal(err)
		}
		if eAct <= 0 {
			t.Errorf("%v: activation energy %g", phase, eAct)
		}
		etaMelt, err := MeltViscosity(phase)
		if err != nil {
			t.Fatal(err)
		}
		if etaMelt <= 0 {
			t.Errorf("%v: melting-point viscosity %g", phase, etaMelt)
		}
	}
	if _, err := ActivationEnergy(Water); err == nil {
		t.Error("water has no creep rheology")
	}
}

func TestConductionLaws(t *testing.T) {
	l := Layer{TTop: 100, TBottom: 110, Thickness: 500}

	ice := phaseTable[IceI].cond
	want := 632 * math.Log(110.0/100.0) / 500
	if got := ice.conductiveFlux(l, 2.4); got != want {
		t.Errorf("ice I conductive flux = %g, want %g", got, want)
	}

	clath := phaseTable[Clathrate].cond
	if got := clath.conductiveFlux(l, 0.5); got != 0.5*10/500 {
		t.Errorf("clathrate conductive flux = %g, want %g", got, 0.5*10/500)
	}
}
