package main

import "time"

// Champion is one selectable catalog entry after filtering.
type Champion struct {
	Name   string   `json:"name" yaml:"name"`
	Cost   int      `json:"cost" yaml:"cost"`
	Traits []string `json:"traits" yaml:"traits"`
}

// RawChampion is a catalog record that passed the shape check but has not
// been through exclusion filtering yet.
type RawChampion struct {
	Name   string
	Cost   int
	Traits []string
}

// Catalog is the shape-checked content of a catalog source.
type Catalog struct {
	Champions []RawChampion
	// Skipped counts records dropped as malformed or as repeated names.
	Skipped int
}

// TraitRegistry maps a trait label to its minimum activation count.
type TraitRegistry map[string]int

// ExactRule designates the trait that activates only at specific counts
// instead of a minimum.
type ExactRule struct {
	Trait  string `mapstructure:"trait" json:"trait" yaml:"trait"`
	Counts []int  `mapstructure:"counts" json:"counts" yaml:"counts"`
}

func (r ExactRule) matches(count int) bool {
	for _, c := range r.Counts {
		if c == count {
			return true
		}
	}
	return false
}

// Score is the tie-break key of a solution.
type Score struct {
	Has5 bool    `json:"has5" yaml:"has5"`
	Has4 bool    `json:"has4" yaml:"has4"`
	Avg  float64 `json:"avg" yaml:"avg"`
	Sum  int     `json:"sum" yaml:"sum"`
}

// Solution is a feasible team with its activated traits and tie-break score.
type Solution struct {
	Team   []Champion `json:"team" yaml:"team"`
	Traits []string   `json:"traits" yaml:"traits"`
	Score  Score      `json:"score" yaml:"score"`

	key string // sorted member names joined with "|"
}

// Stats holds search instrumentation. None of it affects the result.
type Stats struct {
	NodeVisits        int64 `json:"nodeVisits" yaml:"nodeVisits"`
	PrunesCannotReach int64 `json:"prunesCannotReach" yaml:"prunesCannotReach"`
	PrunesExhausted   int64 `json:"prunesExhausted" yaml:"prunesExhausted"`
	Candidates        int64 `json:"candidates" yaml:"candidates"`
	DepthsSearched    int   `json:"depthsSearched" yaml:"depthsSearched"`
}

// Result is the outcome of a full search. Solution is nil when Feasible is false.
type Result struct {
	Feasible bool          `json:"feasible" yaml:"feasible"`
	Solution *Solution     `json:"solution,omitempty" yaml:"solution,omitempty"`
	PoolSize int           `json:"poolSize" yaml:"poolSize"`
	Target   int           `json:"target" yaml:"target"`
	Stats    Stats         `json:"stats" yaml:"stats"`
	Elapsed  time.Duration `json:"-" yaml:"-"`
}
