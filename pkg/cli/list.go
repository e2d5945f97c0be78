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
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/gtflow/gtflow/pkg/overclock"
	"github.com/gtflow/gtflow/pkg/tier"
)

func tiersCmd() *cli.Command {
	return &cli.Command{
		Name:                  "tiers",
		EnableShellCompletion: true,
		Usage:                 "List voltage tiers",
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return writeOutput(ctx, cmd, tierTable(tier.Infos()))
		},
	}
}

func coilsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "coils",
		EnableShellCompletion: true,
		Usage:                 "List coil materials with heat, speed multiplier and minimum tier",
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tables, err := overclock.LoadTables()
			if err != nil {
				return fmt.Errorf("failed to load overclock tables: %w", err)
			}
			return writeOutput(ctx, cmd, coilTable(tables.Coils))
		},
	}
}

type tierTable []tier.Info

func (t tierTable) TableHeader() []string {
	return []string{"TIER", "INDEX", "VOLTAGE"}
}

func (t tierTable) TableRows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, ti := range t {
		rows = append(rows, []string{ti.Name, strconv.Itoa(ti.Index), formatNumber(ti.Voltage)})
	}
	return rows
}

type coilTable []overclock.Coil

func (t coilTable) TableHeader() []string {
	return []string{"COIL", "HEAT", "MULTIPLIER", "MIN TIER"}
}

func (t coilTable) TableRows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, c := range t {
		rows = append(rows, []string{
			c.Name,
			strconv.Itoa(c.Heat) + "K",
			formatNumber(c.Multiplier),
			c.MinTier.String(),
		})
	}
	return rows
}
