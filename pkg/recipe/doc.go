// Package recipe defines the recipe record consumed and produced by the
// overclock engine.
//
// # Overview
//
// A Recipe describes one crafting operation on one machine: what it consumes,
// what it produces, how long it takes and how much power it draws at its base
// tier. The caller sets RequestedTier before handing the recipe to the engine;
// the engine overwrites EUt and Duration with the overclocked values.
//
// # Core Types
//
// Ingredient: one named quantity per operation
//
//	type Ingredient struct {
//	    Name     string
//	    Quantity float64
//	}
//
// IngredientCollection: ordered ingredients, duplicates kept as separate entries
//
// Recipe: machine, tiers, I/O, power and duration
//
//	type Recipe struct {
//	    Machine       string               // normalized machine name
//	    BaseTier      tier.Tier            // optional, derived from EUt when unset
//	    RequestedTier tier.Tier            // tier the machine actually runs at
//	    Inputs        IngredientCollection
//	    Outputs       IngredientCollection
//	    EUt           float64              // EU/t at base tier
//	    Duration      float64              // seconds
//	    Extensions    *Extensions          // machine-specific attributes
//	}
//
// Extensions: typed optional attributes read only by the machine families
// that need them (coils, required heat, pipe casings, saw type, turbine and
// fusion parameters).
//
// # Base Tier
//
// When BaseTier is Unknown the recipe's base tier is the lowest tier whose
// voltage covers EUt, matching how recipes are declared in project files
// (the declared tier is the one the player provides, not the minimum).
//
// # Machine Names
//
// NormalizeMachine lowercases machine names and resolves common aliases
// ("ebf", "lcr", "tgs", ...) so every caller compares the same spelling.
package recipe
