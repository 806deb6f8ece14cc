package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

func sampleResult() *Result {
	team := []Champion{
		champ("Kennen", 1, "Supreme Cells", "Protector"),
		champ("Syndra", 2, "Crystal Gambit", "Star Guardian"),
		champ("Jinx", 4, "Star Guardian", "Sniper"),
	}
	return &Result{
		Feasible: true,
		Solution: newSolution(team, []string{"Protector", "Star Guardian"}),
		PoolSize: 40,
		Target:   2,
		Stats:    Stats{NodeVisits: 123456, PrunesCannotReach: 1000, PrunesExhausted: 7, DepthsSearched: 3},
		Elapsed:  42 * time.Millisecond,
	}
}

func TestNewResultView(t *testing.T) {
	v := NewResultView(sampleResult())
	want := ResultView{
		Feasible:  true,
		Size:      3,
		Team:      []string{"Kennen", "Syndra", "Jinx"},
		Costs:     []int{1, 2, 4},
		AvgCost:   7.0 / 3,
		Has4:      true,
		Traits:    []string{"Protector", "Star Guardian"},
		PoolSize:  40,
		Target:    2,
		Stats:     Stats{NodeVisits: 123456, PrunesCannotReach: 1000, PrunesExhausted: 7, DepthsSearched: 3},
		ElapsedMs: 42,
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("view mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatResultText(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatResult(&buf, sampleResult(), FormatText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"=== RESULT ===",
		"Champion count: 3",
		"Syndra",
		"Has 5-cost?: No",
		"Has 4-cost?: Yes",
		"Activated traits (2): Protector, Star Guardian",
		"Node visits: 123,456, prunes(cannot-reach): 1,000, prunes(exhausted): 7",
		"Done in 42 ms",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatResultTextInfeasible(t *testing.T) {
	var buf bytes.Buffer
	res := &Result{PoolSize: 3, Target: 9}
	if err := FormatResult(&buf, res, ""); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "No feasible combination. Adjust exclusions/thresholds.") {
		t.Errorf("missing infeasible message:\n%s", out)
	}
	if strings.Contains(out, "=== RESULT ===") {
		t.Errorf("infeasible output has a result block:\n%s", out)
	}
}

func TestFormatResultJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatResult(&buf, sampleResult(), FormatJSON); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !gjson.Valid(out) {
		t.Fatalf("invalid JSON:\n%s", out)
	}
	if got := gjson.Get(out, "team.#").Int(); got != 3 {
		t.Errorf("team.# = %d, want 3", got)
	}
	if got := gjson.Get(out, "team.2").String(); got != "Jinx" {
		t.Errorf("team.2 = %q, want Jinx", got)
	}
	if !gjson.Get(out, "has4").Bool() || gjson.Get(out, "has5").Bool() {
		t.Errorf("has4/has5 wrong in %s", out)
	}
	if got := gjson.Get(out, "stats.nodeVisits").Int(); got != 123456 {
		t.Errorf("stats.nodeVisits = %d, want 123456", got)
	}
	if !strings.Contains(out, "\n  ") {
		t.Errorf("JSON output not indented:\n%s", out)
	}
}

func TestFormatResultYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatResult(&buf, sampleResult(), FormatYAML); err != nil {
		t.Fatal(err)
	}
	var got ResultView
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode yaml: %v\n%s", err, buf.String())
	}
	if diff := cmp.Diff(NewResultView(sampleResult()), got); diff != "" {
		t.Errorf("yaml round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatResultUnknown(t *testing.T) {
	if err := FormatResult(&bytes.Buffer{}, sampleResult(), "xml"); err == nil {
		t.Error("want error for unknown format")
	}
}

func TestFormatPool(t *testing.T) {
	cfg := testConfig(1, map[string]int{"Sniper": 2})
	pool := []Champion{champ("Jinx", 4, "Sniper", "Star Guardian", "Mentor")}
	var buf bytes.Buffer
	if err := FormatPool(&buf, pool, NewEvaluator(&cfg)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Jinx", "Sniper, Star Guardian, Mentor", "YIELD"} {
		if !strings.Contains(out, want) {
			t.Errorf("pool table missing %q:\n%s", want, out)
		}
	}
}

func TestSummarizeTraits(t *testing.T) {
	cfg := testConfig(1, map[string]int{"Sniper": 2, "Rosemother": 1})
	cfg.ExcludeTraits = []string{"Rosemother"}
	pool := []Champion{
		champ("Jinx", 4, "Sniper", "Star Guardian"),
		champ("Gnar", 3, "Sniper", "Luchador"),
	}

	got := SummarizeTraits(&cfg, pool)
	want := []TraitSummary{
		{Trait: "Luchador", Rule: "unregistered", Champions: 1},
		{Trait: "Mentor", Rule: "exactly 1 or 4"},
		{Trait: "Rosemother", Rule: ">= 1", Excluded: true},
		{Trait: "Sniper", Rule: ">= 2", Champions: 2},
		{Trait: "Star Guardian", Rule: "unregistered", Champions: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SummarizeTraits mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err := FormatTraits(&buf, got); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "exactly 1 or 4") {
		t.Errorf("traits table missing exact rule:\n%s", buf.String())
	}
}
