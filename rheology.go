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
)

// RGas is the universal gas constant [J/mol/K].
const RGas = 8.314

// Empirical fit constants for the rheological sublayer temperature
// from Deschamps and Sotin (2001).
const (
	dsC1 = 1.43
	dsC2 = -0.03
)

// DomainError indicates that an input or intermediate quantity left
// its physically meaningful domain during a layer evaluation, for
// example a non-positive driving temperature difference or a
// non-finite Rayleigh number. It is fatal for that evaluation.
type DomainError struct {
	Quantity string
	Value    float64
}

func (e DomainError) Error() string {
	return fmt.Sprintf("iceshell: %s = %g is outside its physical domain",
		e.Quantity, e.Value)
}

// CriticalTemperature returns the temperature of the nearly isothermal
// convecting interior of a shell with bottom temperature tBottom [K],
// top-to-bottom temperature difference deltaT [K], and creep
// activation energy eAct [J/mol]. It is the explicit root of the
// quadratic obtained from the rheological sublayer scaling of
// Deschamps and Sotin (2001); no iteration is involved.
func CriticalTemperature(tBottom, deltaT, eAct float64) (float64, error) {
	b := eAct / (2 * RGas * dsC1)
	c := dsC2 * deltaT
	radicand := 1 + 2/b*(tBottom-c)
	if radicand < 0 {
		return 0, DomainError{"critical temperature radicand", radicand}
	}
	return b * (math.Sqrt(radicand) - 1), nil
}

// Viscosity evaluates the Arrhenius melting-point viscosity law
// ν = ν0·exp(E/(R·Tbottom)·(Tbottom/Tcore − 1)) for a phase with
// melting-point viscosity etaMelt [Pa s] and activation energy eAct
// [J/mol]. tBottom is the melting (bottom) temperature and tCore the
// convecting interior temperature, both in K.
func Viscosity(etaMelt, eAct, tBottom, tCore float64) (float64, error) {
	if tCore <= 0 {
		return 0, DomainError{"core temperature", tCore}
	}
	a := eAct / (RGas * tBottom)
	return etaMelt * math.Exp(a*(tBottom/tCore-1)), nil
}
