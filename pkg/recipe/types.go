// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package recipe

import "strings"

// Ingredient is one input or output of a recipe, per operation.
type Ingredient struct {
	Name     string  `json:"name" yaml:"name"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
}

// IngredientCollection is an ordered list of ingredients. Names are not
// unique: two entries with the same name stay independent.
type IngredientCollection []Ingredient

// NewIngredients builds a collection from name/quantity pairs in order.
func NewIngredients(ings ...Ingredient) IngredientCollection {
	out := make(IngredientCollection, len(ings))
	copy(out, ings)
	return out
}

// Len returns the number of entries.
func (c IngredientCollection) Len() int {
	return len(c)
}

// Names returns the entry names in order, including duplicates.
func (c IngredientCollection) Names() []string {
	out := make([]string, len(c))
	for i, ing := range c {
		out[i] = ing.Name
	}
	return out
}

// Get returns every quantity recorded under name, in order.
func (c IngredientCollection) Get(name string) []float64 {
	var out []float64
	for _, ing := range c {
		if strings.EqualFold(ing.Name, name) {
			out = append(out, ing.Quantity)
		}
	}
	return out
}

// Scale multiplies every quantity by f in place.
func (c IngredientCollection) Scale(f float64) {
	for i := range c {
		c[i].Quantity *= f
	}
}

// Clone returns an independent copy.
func (c IngredientCollection) Clone() IngredientCollection {
	if c == nil {
		return nil
	}
	out := make(IngredientCollection, len(c))
	copy(out, c)
	return out
}
