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

import "github.com/ctessum/unit"

// Dimensioned views of Regime quantities, for report formatting and
// for dimensional checks when combining results with other models.

// HeatFluxUnits returns the layer heat flux as a dimensioned quantity
// (W/m² = kg/s³).
func (r *Regime) HeatFluxUnits() *unit.Unit {
	return unit.New(r.HeatFlux, unit.Dimensions{
		unit.MassDim: 1,
		unit.TimeDim: -3,
	})
}

// TCoreUnits returns the convecting core temperature as a dimensioned
// quantity.
func (r *Regime) TCoreUnits() *unit.Unit {
	return unit.New(r.TCore, unit.Dimensions{unit.TemperatureDim: 1})
}

// ViscosityUnits returns the viscosity at the core temperature as a
// dimensioned quantity (Pa·s = kg/(m·s)).
func (r *Regime) ViscosityUnits() *unit.Unit {
	return unit.New(r.Viscosity, unit.Dimensions{
		unit.MassDim:   1,
		unit.LengthDim: -1,
		unit.TimeDim:   -1,
	})
}

// UpperBLUnits returns the conductive lid thickness as a dimensioned
// quantity.
func (r *Regime) UpperBLUnits() *unit.Unit {
	return unit.New(r.UpperBL, unit.Dimensions{unit.LengthDim: 1})
}

// LowerBLUnits returns the lower thermal boundary layer thickness as a
// dimensioned quantity.
func (r *Regime) LowerBLUnits() *unit.Unit {
	return unit.New(r.LowerBL, unit.Dimensions{unit.LengthDim: 1})
}
