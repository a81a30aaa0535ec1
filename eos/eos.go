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

// Package eos assembles the material-property providers in its
// subpackages into a single provider covering every phase the
// convection calculation supports.
package eos

import (
	"github.com/cryomodel/iceshell"
	"github.com/cryomodel/iceshell/eos/cg2010"
	"github.com/cryomodel/iceshell/eos/clathrate"
)

// Provider dispatches property evaluation to the correlation family
// appropriate for each phase: the Choukroun and Grasset (2010) model
// for the ordinary ices and the clathrate correlations for methane
// clathrate.
type Provider struct {
	Ice   iceshell.PropertyProvider
	Clath iceshell.PropertyProvider
}

// New returns a Provider covering all supported phases.
func New() *Provider {
	return &Provider{Ice: cg2010.New(), Clath: clathrate.New()}
}

// Properties implements iceshell.PropertyProvider.
func (p *Provider) Properties(pMPa, tK float64, phase iceshell.Phase) (iceshell.Properties, error) {
	if phase == iceshell.Clathrate {
		return p.Clath.Properties(pMPa, tK, phase)
	}
	return p.Ice.Properties(pMPa, tK, phase)
}
