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
	"fmt"
	"math"
	"strings"
)

// Phase identifies the H2O phase of a shell layer.
type Phase int

// The phases tracked by the model. Water is included so that phase
// output from equation-of-state routines can round-trip through this
// type, but it is not a valid phase for the convection calculation.
const (
	Water Phase = iota
	IceI
	IceII
	IceIII
	IceV
	IceVI
	Clathrate
)

var phaseNames = map[Phase]string{
	Water:     "water",
	IceI:      "ice I",
	IceII:     "ice II",
	IceIII:    "ice III",
	IceV:      "ice V",
	IceVI:     "ice VI",
	Clathrate: "clathrate",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return fmt.Sprintf("unknown phase (%d)", int(p))
}

// ParsePhase returns the Phase corresponding to a name such as
// "ice I" or "clathrate". Matching is case-insensitive and ignores
// surrounding space.
func ParsePhase(name string) (Phase, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for p, s := range phaseNames {
		if s == want {
			return p, nil
		}
	}
	return 0, fmt.Errorf("iceshell: unknown phase name %q", name)
}

// Phases returns the phases for which the convection calculation is
// defined, in ascending phase order.
func Phases() []Phase {
	return []Phase{IceI, IceII, IceIII, IceV, IceVI, Clathrate}
}

// UnsupportedPhaseError indicates a phase for which the convection
// calculation is not defined: liquid water or an unrecognized phase
// value.
type UnsupportedPhaseError struct {
	Phase Phase
}

func (e UnsupportedPhaseError) Error() string {
	return fmt.Sprintf("iceshell: convection is not defined for %v", e.Phase)
}

// conductionLaw gives the purely conductive heat flux across a layer
// for one conductivity family. Ordinary ices have a 1/T thermal
// conductivity, which integrates to a logarithmic temperature profile;
// clathrate conductivity is constant, so the plain Fourier law applies.
type conductionLaw interface {
	conductiveFlux(l Layer, kWmK float64) float64
}

// logConduction is the D·ln(Tbottom/Ttop)/h law for phases with
// conductivity k(T) = D/T.
type logConduction struct {
	d float64 // conduction integral constant [W/m]
}

func (c logConduction) conductiveFlux(l Layer, _ float64) float64 {
	return c.d * math.Log(l.TBottom/l.TTop) / l.Thickness
}

// linearConduction is the Fourier law k·ΔT/h for phases whose
// conductivity does not depend on temperature.
type linearConduction struct{}

func (linearConduction) conductiveFlux(l Layer, kWmK float64) float64 {
	return kWmK * (l.TBottom - l.TTop) / l.Thickness
}

// phaseParams holds the fixed rheological and regime constants for one
// phase. The creep parameters for the ordinary ices are from Deschamps
// and Sotin (2001), table 1; the clathrate activation energy and the
// factor-of-20 viscosity contrast with ice I are from Durham et al.
// (2003). The critical Rayleigh number is treated as a fixed per-phase
// constant rather than recomputed per call.
type phaseParams struct {
	eAct    float64 // activation energy for creep [J/mol]
	etaMelt float64 // viscosity at the melting temperature [Pa s]
	raCrit  float64 // critical Rayleigh number
	cond    conductionLaw
}

var phaseTable = map[Phase]phaseParams{
	IceI:      {eAct: 60.0e3, etaMelt: 1e14, raCrit: 1e5, cond: logConduction{632}},
	IceII:     {eAct: 77.0e3, etaMelt: 1e18, raCrit: 1e5, cond: logConduction{418}},
	IceIII:    {eAct: 127.0e3, etaMelt: 5e12, raCrit: 1e5, cond: logConduction{242}},
	IceV:      {eAct: 136.0e3, etaMelt: 5e14, raCrit: 1e5, cond: logConduction{328}},
	IceVI:     {eAct: 110.0e3, etaMelt: 5e14, raCrit: 1e5, cond: logConduction{183}},
	Clathrate: {eAct: 90.0e3, etaMelt: 2e15, raCrit: 2e7, cond: linearConduction{}},
}

// ActivationEnergy returns the creep activation energy for phase in
// J/mol, or an UnsupportedPhaseError for phases without a rheology.
func ActivationEnergy(phase Phase) (float64, error) {
	par, ok := phaseTable[phase]
	if !ok {
		return 0, UnsupportedPhaseError{phase}
	}
	return par.eAct, nil
}

// MeltViscosity returns the melting-point viscosity for phase in Pa s,
// or an UnsupportedPhaseError for phases without a rheology.
func MeltViscosity(phase Phase) (float64, error) {
	par, ok := phaseTable[phase]
	if !ok {
		return 0, UnsupportedPhaseError{phase}
	}
	return par.etaMelt, nil
}
