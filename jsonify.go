// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package splay

import (
	"encoding/json"
)

// MarshalJSON dumps the elements as JSON array in ascending sort order,
// the elements are marshalled by their own rules.
// An empty tree is dumped as empty array. MarshalJSON does not splay.
func (t *Tree[T, E]) MarshalJSON() ([]byte, error) {
	elems := make([]*E, 0, t.Len())
	for e := range t.All {
		elems = append(elems, e)
	}

	buf, err := json.Marshal(elems)
	if err != nil {
		return nil, err
	}

	return buf, nil
}
