package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by FormatResult.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ResultView is the presentation shape of a Result.
type ResultView struct {
	Feasible  bool     `json:"feasible" yaml:"feasible"`
	Size      int      `json:"size,omitempty" yaml:"size,omitempty"`
	Team      []string `json:"team,omitempty" yaml:"team,omitempty"`
	Costs     []int    `json:"costs,omitempty" yaml:"costs,omitempty"`
	AvgCost   float64  `json:"avgCost,omitempty" yaml:"avgCost,omitempty"`
	Has5      bool     `json:"has5" yaml:"has5"`
	Has4      bool     `json:"has4" yaml:"has4"`
	Traits    []string `json:"traits,omitempty" yaml:"traits,omitempty"`
	PoolSize  int      `json:"poolSize" yaml:"poolSize"`
	Target    int      `json:"target" yaml:"target"`
	Stats     Stats    `json:"stats" yaml:"stats"`
	ElapsedMs int64    `json:"elapsedMs" yaml:"elapsedMs"`
}

// NewResultView flattens a result. Team members stay in pool order with
// costs aligned; traits are sorted.
func NewResultView(res *Result) ResultView {
	v := ResultView{
		Feasible:  res.Feasible,
		PoolSize:  res.PoolSize,
		Target:    res.Target,
		Stats:     res.Stats,
		ElapsedMs: res.Elapsed.Milliseconds(),
	}
	if !res.Feasible || res.Solution == nil {
		return v
	}
	sol := res.Solution
	v.Size = len(sol.Team)
	for _, c := range sol.Team {
		v.Team = append(v.Team, c.Name)
		v.Costs = append(v.Costs, c.Cost)
	}
	v.AvgCost = sol.Score.Avg
	v.Has5 = sol.Score.Has5
	v.Has4 = sol.Score.Has4
	v.Traits = append([]string(nil), sol.Traits...)
	return v
}

// FormatResult writes res to w in the given format.
func FormatResult(w io.Writer, res *Result, format string) error {
	view := NewResultView(res)
	switch format {
	case FormatJSON:
		raw, err := json.Marshal(view)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = w.Write(pretty.Pretty(raw))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatText, "":
		_, err := io.WriteString(w, formatText(res, view))
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

const separator = "──────────────────────────────────────────────"

func formatText(res *Result, v ResultView) string {
	var b strings.Builder
	b.WriteString(separator + "\n")

	if !v.Feasible {
		b.WriteString("No feasible combination. Adjust exclusions/thresholds.\n")
	} else {
		b.WriteString("=== RESULT ===\n")
		fmt.Fprintf(&b, "Champion count: %d\n", v.Size)

		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"#", "Champion", "Cost", "Traits"})
		for i, c := range res.Solution.Team {
			t.AppendRow(table.Row{i + 1, c.Name, c.Cost, strings.Join(c.Traits, ", ")})
		}
		t.AppendFooter(table.Row{"", "Avg", fmt.Sprintf("%.2f", v.AvgCost), ""})
		b.WriteString(t.Render())
		b.WriteString("\n")

		fmt.Fprintf(&b, "Has 5-cost?: %s\n", yesNo(v.Has5))
		fmt.Fprintf(&b, "Has 4-cost?: %s\n", yesNo(v.Has4))
		fmt.Fprintf(&b, "Activated traits (%d): %s\n", len(v.Traits), strings.Join(v.Traits, ", "))
	}

	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "Node visits: %s, prunes(cannot-reach): %s, prunes(exhausted): %s\n",
		humanize.Comma(v.Stats.NodeVisits),
		humanize.Comma(v.Stats.PrunesCannotReach),
		humanize.Comma(v.Stats.PrunesExhausted))
	fmt.Fprintf(&b, "Done in %d ms\n", v.ElapsedMs)
	return b.String()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// FormatPool renders the ordered pool with each champion's eligible trait
// yield, the number the tight bound works from.
func FormatPool(w io.Writer, pool []Champion, ev *Evaluator) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Champion", "Cost", "Traits", "Yield"})
	for i := range pool {
		c := &pool[i]
		t.AppendRow(table.Row{i, c.Name, c.Cost, strings.Join(c.Traits, ", "), ev.yield(c)})
	}
	t.AppendFooter(table.Row{"", "Total", len(pool), "", ""})
	t.Render()
	return nil
}

// TraitSummary is one row of the traits report.
type TraitSummary struct {
	Trait     string
	Rule      string
	Champions int
	Excluded  bool
}

// SummarizeTraits lists every trait in the registry or pool with its rule and
// how many pool champions carry it, sorted by name.
func SummarizeTraits(cfg *Config, pool []Champion) []TraitSummary {
	ev := NewEvaluator(cfg)
	carriers := make(map[string]int)
	for i := range pool {
		for _, t := range pool[i].Traits {
			carriers[t]++
		}
	}
	names := make(map[string]bool)
	for t := range ev.registry {
		names[t] = true
	}
	for t := range carriers {
		names[t] = true
	}
	if ev.exact.Trait != "" {
		names[ev.exact.Trait] = true
	}

	var out []TraitSummary
	for _, t := range sortedKeys(names) {
		row := TraitSummary{Trait: t, Champions: carriers[t], Excluded: ev.excluded[t]}
		threshold, registered := ev.registry[t]
		switch {
		case t == ev.exact.Trait:
			row.Rule = "exactly " + joinInts(ev.exact.Counts, " or ")
		case registered:
			row.Rule = fmt.Sprintf(">= %d", threshold)
		default:
			row.Rule = "unregistered"
		}
		out = append(out, row)
	}
	return out
}

// FormatTraits renders SummarizeTraits as a table.
func FormatTraits(w io.Writer, rows []TraitSummary) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Trait", "Rule", "Champions", "Excluded"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Trait, r.Rule, r.Champions, yesNo(r.Excluded)})
	}
	t.Render()
	return nil
}

func joinInts(ns []int, sep string) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, sep)
}
