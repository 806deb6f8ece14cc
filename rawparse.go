package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/tidwall/gjson"
)

// ErrInvalidCatalog is returned when a catalog source is not a JSON array.
var ErrInvalidCatalog = errors.New("invalid catalog")

// LoadCatalog reads and shape-checks a champion catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	cat, err := parseCatalog(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cat, nil
}

// parseCatalog reads a JSON array of {name, cost, traits} records. Records
// that fail the shape check are counted in Skipped, not reported as errors.
func parseCatalog(catalogJSON string) (*Catalog, error) {
	if !gjson.Valid(catalogJSON) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidCatalog)
	}
	root := gjson.Parse(catalogJSON)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: top level is not an array", ErrInvalidCatalog)
	}
	return readChampions(root), nil
}

// readChampions keeps the first record of a repeated name and skips the rest.
func readChampions(arr gjson.Result) *Catalog {
	cat := &Catalog{}
	seen := make(map[string]bool)
	arr.ForEach(func(_, v gjson.Result) bool {
		rc, ok := readChampion(v)
		if !ok || seen[rc.Name] {
			cat.Skipped++
			return true
		}
		seen[rc.Name] = true
		cat.Champions = append(cat.Champions, rc)
		return true
	})
	return cat
}

// readChampion is stricter than a plain shape check: costs must be whole and
// non-negative.
func readChampion(v gjson.Result) (RawChampion, bool) {
	if !v.IsObject() {
		return RawChampion{}, false
	}
	name := v.Get("name")
	if name.Type != gjson.String || name.String() == "" {
		return RawChampion{}, false
	}
	cost, ok := readCost(v.Get("cost"))
	if !ok {
		return RawChampion{}, false
	}
	traits := readTraits(v.Get("traits"))
	if len(traits) == 0 {
		return RawChampion{}, false
	}
	return RawChampion{Name: name.String(), Cost: cost, Traits: traits}, true
}

// readCost accepts finite, non-negative, integral JSON numbers only.
func readCost(v gjson.Result) (int, bool) {
	if v.Type != gjson.Number {
		return 0, false
	}
	f := v.Float()
	if math.IsInf(f, 0) || math.IsNaN(f) || f < 0 || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// readTraits returns the distinct string labels of a trait array, in order.
func readTraits(v gjson.Result) []string {
	if !v.IsArray() {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	v.ForEach(func(_, t gjson.Result) bool {
		if t.Type != gjson.String {
			return true
		}
		s := t.String()
		if s == "" || seen[s] {
			return true
		}
		seen[s] = true
		out = append(out, s)
		return true
	})
	return out
}
