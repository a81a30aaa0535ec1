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

package eos

import (
	"context"
	"fmt"
	"runtime"

	"github.com/ctessum/requestcache"

	"github.com/cryomodel/iceshell"
)

// Cached wraps a PropertyProvider with an in-memory, deduplicating
// cache keyed by (phase, pressure, temperature). It is useful when the
// wrapped provider performs expensive tabulated interpolation and an
// outer loop evaluates many layers at repeating conditions. Cached is
// safe for concurrent use.
type Cached struct {
	provider iceshell.PropertyProvider
	cache    *requestcache.Cache
}

type propsRequest struct {
	pMPa, tK float64
	phase    iceshell.Phase
}

// NewCached returns a caching wrapper around provider holding up to
// maxEntries evaluated property points.
func NewCached(provider iceshell.PropertyProvider, maxEntries int) *Cached {
	c := &Cached{provider: provider}
	c.cache = requestcache.NewCache(c.process, runtime.GOMAXPROCS(-1),
		requestcache.Deduplicate(), requestcache.Memory(maxEntries))
	return c
}

func (c *Cached) process(ctx context.Context, request interface{}) (interface{}, error) {
	req := request.(propsRequest)
	return c.provider.Properties(req.pMPa, req.tK, req.phase)
}

// Properties implements iceshell.PropertyProvider.
func (c *Cached) Properties(pMPa, tK float64, phase iceshell.Phase) (iceshell.Properties, error) {
	key := fmt.Sprintf("%d_%g_%g", phase, pMPa, tK)
	req := c.cache.NewRequest(context.Background(), propsRequest{pMPa, tK, phase}, key)
	result, err := req.Result()
	if err != nil {
		return iceshell.Properties{}, err
	}
	return result.(iceshell.Properties), nil
}
