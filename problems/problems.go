// Package problems holds the worked LP and MILP word problems shipped with
// this repository. Each builder maps the literal tables of one textbook
// problem onto a linprog model; nothing here knows about solvers.
package problems

import (
	"sort"

	"github.com/whoisorioki/linprog"
)

// Builder constructs the model of one worked problem.
type Builder func() (*linprog.Model, error)

// Catalog lists every worked problem by the name used by cmd/linprog.
var Catalog = map[string]Builder{
	"rice":           RiceAllocation,
	"furniture":      FurnitureMix,
	"transportation": Transportation,
	"assignment":     WorkerAssignment,
	"batches":        ProductionBatches,
	"knapsack":       Knapsack,
}

// Names returns the catalog keys in sorted order.
func Names() []string {
	names := make([]string, 0, len(Catalog))
	for name := range Catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
