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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/gtflow/gtflow/pkg/overclock"
	"github.com/gtflow/gtflow/pkg/recipe"
	"github.com/gtflow/gtflow/pkg/serializer"
	"github.com/gtflow/gtflow/pkg/tier"
)

func resolveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "resolve",
		EnableShellCompletion: true,
		Usage:                 "Overclock recipes to a requested tier",
		Description: `Resolve one recipe given by flags, or a list of recipes from a file,
to the power draw and duration it has on the requested tier.

The machine name selects the overclock rules (standard, perfect, heat,
GT++ parallel, turbines, ...). Unknown machines use standard rules.

# Examples

Standard machine:
  gtflow resolve -m macerator --tier HV --eut 2 --duration 10

Blast furnace with coils and required heat:
  gtflow resolve -m ebf --tier HV --base-tier MV --eut 120 --duration 50 \
    --coils kanthal --heat 1000

Ingredients are name=quantity pairs:
  gtflow resolve -m "chemical plant" --tier HV --eut 30 --duration 30 \
    --coils nichrome --pipe-casings steel \
    --consumes "iron dust=1" --produces "iron ingot=1"

A file of recipes (YAML or JSON list), resolved concurrently:
  gtflow resolve -f line.yaml --format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   `Path to a YAML or JSON list of recipes ("-" for stdin). Recipe flags are ignored.`,
			},
			&cli.StringFlag{
				Name:    "machine",
				Aliases: []string{"m"},
				Usage:   "Machine name or alias (e.g. ebf, lcr, macerator)",
			},
			&cli.StringFlag{
				Name:  "tier",
				Usage: fmt.Sprintf("Requested tier (supported values: %v)", tier.Names()),
			},
			&cli.StringFlag{
				Name:  "base-tier",
				Usage: "Base tier of the recipe (default: lowest tier covering --eut)",
			},
			&cli.FloatFlag{
				Name:  "eut",
				Usage: "Base power draw in EU/t",
			},
			&cli.FloatFlag{
				Name:  "duration",
				Usage: "Base duration in seconds",
			},
			&cli.StringSliceFlag{
				Name:  "consumes",
				Usage: "Input ingredient as name=quantity (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:  "produces",
				Usage: "Output ingredient as name=quantity (repeatable)",
			},
			&cli.StringFlag{
				Name:  "coils",
				Usage: "Coil material (e.g. kanthal, nichrome)",
			},
			&cli.IntFlag{
				Name:  "heat",
				Usage: "Required heat in kelvin",
			},
			&cli.StringFlag{
				Name:  "pipe-casings",
				Usage: "Chemical plant pipe casing material",
			},
			&cli.StringFlag{
				Name:  "saw",
				Usage: "Tree growth simulator saw type (saw, buzzsaw, chainsaw)",
			},
			&cli.StringFlag{
				Name:  "rotor-size",
				Usage: "Turbine rotor size (small, medium, large, huge)",
			},
			&cli.StringFlag{
				Name:  "rotor-material",
				Usage: "Turbine rotor material (e.g. infinity)",
			},
			&cli.IntFlag{
				Name:  "mark",
				Usage: "Fusion reactor mark the recipe runs on",
			},
			&cli.IntFlag{
				Name:  "start-mark",
				Usage: "Lowest fusion reactor mark that can run the recipe",
			},
			&cli.BoolFlag{
				Name:  "no-overclock",
				Usage: "Keep the recipe exactly as declared",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write engine metrics in Prometheus text format to this path",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			recipes, err := recipesFromCmd(cmd)
			if err != nil {
				return err
			}

			engine, err := overclock.New(overclock.WithLogger(slog.Default()))
			if err != nil {
				return fmt.Errorf("failed to create overclock engine: %w", err)
			}
			if err := engine.ResolveAll(ctx, recipes); err != nil {
				return err
			}

			if path := cmd.String("metrics-file"); path != "" {
				if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
					return fmt.Errorf("failed to write metrics to %q: %w", path, err)
				}
			}

			return writeOutput(ctx, cmd, recipeTable(recipes))
		},
	}
}

// recipesFromCmd loads recipes from --file, or builds one from flags.
func recipesFromCmd(cmd *cli.Command) ([]*recipe.Recipe, error) {
	if path := cmd.String("file"); path != "" {
		loaded, err := serializer.FromFile[[]*recipe.Recipe](path)
		if err != nil {
			return nil, fmt.Errorf("failed to load recipes from %q: %w", path, err)
		}
		for i, r := range *loaded {
			if r == nil {
				return nil, fmt.Errorf("recipe %d in %q is empty", i, path)
			}
			r.Machine = recipe.NormalizeMachine(r.Machine)
		}
		return *loaded, nil
	}

	r, err := buildRecipeFromCmd(cmd)
	if err != nil {
		return nil, err
	}
	return []*recipe.Recipe{r}, nil
}

// buildRecipeFromCmd constructs a recipe from the resolve flags.
func buildRecipeFromCmd(cmd *cli.Command) (*recipe.Recipe, error) {
	machine := cmd.String("machine")
	if strings.TrimSpace(machine) == "" {
		return nil, fmt.Errorf("--machine is required unless --file is given")
	}

	requested, err := tier.Parse(cmd.String("tier"))
	if err != nil {
		return nil, fmt.Errorf("tier: %w", err)
	}

	inputs, err := parseIngredients(cmd.StringSlice("consumes"))
	if err != nil {
		return nil, fmt.Errorf("consumes: %w", err)
	}
	outputs, err := parseIngredients(cmd.StringSlice("produces"))
	if err != nil {
		return nil, fmt.Errorf("produces: %w", err)
	}

	r := recipe.New(machine, requested, inputs, outputs, cmd.Float("eut"), cmd.Float("duration"))

	if base := cmd.String("base-tier"); base != "" {
		if r.BaseTier, err = tier.Parse(base); err != nil {
			return nil, fmt.Errorf("base-tier: %w", err)
		}
	}

	ext := recipe.Extensions{
		Coils:       cmd.String("coils"),
		PipeCasings: cmd.String("pipe-casings"),
		SawType:     cmd.String("saw"),
		NoOverclock: cmd.Bool("no-overclock"),
	}
	if cmd.IsSet("heat") {
		ext.Heat = recipe.HeatPtr(int(cmd.Int("heat")))
	}
	if cmd.IsSet("rotor-size") || cmd.IsSet("rotor-material") {
		ext.Turbine = &recipe.TurbineSpec{
			Size:     cmd.String("rotor-size"),
			Material: cmd.String("rotor-material"),
		}
	}
	if cmd.IsSet("mark") || cmd.IsSet("start-mark") {
		ext.Fusion = &recipe.FusionSpec{
			Mark:      int(cmd.Int("mark")),
			StartMark: int(cmd.Int("start-mark")),
		}
	}
	if ext != (recipe.Extensions{}) {
		r.WithExtensions(ext)
	}
	return r, nil
}

// parseIngredients parses name=quantity pairs. The last '=' separates the
// quantity so names may contain '='.
func parseIngredients(values []string) (recipe.IngredientCollection, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make(recipe.IngredientCollection, 0, len(values))
	for _, v := range values {
		i := strings.LastIndex(v, "=")
		if i < 0 {
			return nil, fmt.Errorf("ingredient %q must be name=quantity", v)
		}
		ingName := strings.TrimSpace(v[:i])
		if ingName == "" {
			return nil, fmt.Errorf("ingredient %q has no name", v)
		}
		qty, err := strconv.ParseFloat(strings.TrimSpace(v[i+1:]), 64)
		if err != nil {
			return nil, fmt.Errorf("ingredient %q has invalid quantity: %w", v, err)
		}
		out = append(out, recipe.Ingredient{Name: ingName, Quantity: qty})
	}
	return out, nil
}

// recipeTable renders resolved recipes one per row.
type recipeTable []*recipe.Recipe

func (t recipeTable) TableHeader() []string {
	return []string{"MACHINE", "TIER", "EU/T", "DURATION", "INPUTS", "OUTPUTS"}
}

func (t recipeTable) TableRows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, r := range t {
		rows = append(rows, []string{
			r.DisplayName(),
			r.RequestedTier.String(),
			formatNumber(r.EUt),
			formatNumber(r.Duration) + "s",
			formatIngredients(r.Inputs),
			formatIngredients(r.Outputs),
		})
	}
	return rows
}

func formatIngredients(c recipe.IngredientCollection) string {
	if c.Len() == 0 {
		return "-"
	}
	parts := make([]string, 0, c.Len())
	for _, ing := range c {
		parts = append(parts, formatNumber(ing.Quantity)+"x "+ing.Name)
	}
	return strings.Join(parts, ", ")
}

// formatNumber prints at most two decimals and drops trailing zeros.
func formatNumber(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}
