package main

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// BuildPool filters the catalog by the config's exclusions and returns the
// candidate pool in search order.
func BuildPool(cat *Catalog, cfg *Config) []Champion {
	pool := filterChampions(cat.Champions, trimmedSet(cfg.ExcludeChampions), trimmedSet(cfg.ExcludeTraits))
	sortPool(pool)
	return pool
}

// filterChampions drops excluded champions, strips excluded traits and drops
// champions left without traits. The input is not modified.
func filterChampions(raw []RawChampion, excludeChamps, excludeTraits map[string]bool) []Champion {
	log := newLogger("pool")

	pool := make([]Champion, 0, len(raw))
	droppedByName, droppedEmpty := 0, 0
	for _, rc := range raw {
		if excludeChamps[rc.Name] {
			droppedByName++
			continue
		}
		traits := make([]string, 0, len(rc.Traits))
		for _, t := range rc.Traits {
			if !excludeTraits[t] {
				traits = append(traits, t)
			}
		}
		if len(traits) == 0 {
			droppedEmpty++
			continue
		}
		pool = append(pool, Champion{Name: rc.Name, Cost: rc.Cost, Traits: traits})
	}

	log.Debug("filtered catalog",
		slog.Int("loaded", len(raw)),
		slog.Int("excluded", droppedByName),
		slog.Int("emptied", droppedEmpty),
		slog.Int("pool", len(pool)))
	return pool
}

// sortPool orders by cost ascending, trait count descending, name ascending.
// Names are unique so the order is total.
func sortPool(pool []Champion) {
	slices.SortStableFunc(pool, compareChampions)
}

func compareChampions(a, b Champion) int {
	if a.Cost != b.Cost {
		return a.Cost - b.Cost
	}
	if len(a.Traits) != len(b.Traits) {
		return len(b.Traits) - len(a.Traits)
	}
	return strings.Compare(a.Name, b.Name)
}

// poolPreview renders the first n pool entries as name(cost)[trait|trait].
func poolPreview(pool []Champion, n int) string {
	parts := make([]string, 0, n)
	for i := 0; i < len(pool) && i < n; i++ {
		c := pool[i]
		parts = append(parts, fmt.Sprintf("%s(%d)[%s]", c.Name, c.Cost, strings.Join(c.Traits, "|")))
	}
	s := strings.Join(parts, " | ")
	if len(pool) > n {
		s += " ..."
	}
	return s
}
