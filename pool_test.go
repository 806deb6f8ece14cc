package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildPool(t *testing.T) {
	cat := &Catalog{Champions: []RawChampion{
		raw("Zac", 1, "Wraith", "Heavyweight"),
		raw("Ekko", 5, "Prodigy", "Strategist"),
		raw("Lee Sin", 5, "Stance Master"),
		raw("Braum", 5, "The Champ", "Luchador", "Bastion"),
		raw("Kennen", 1, "Supreme Cells", "Protector", "Sorcerer"),
		raw("Aatrox", 1, "Mighty Mech", "Heavyweight"),
		raw("Jinx", 4, "Star Guardian", "Sniper"),
	}}
	cfg := testConfig(3, nil)
	cfg.ExcludeChampions = []string{"Ekko", " Jinx"}
	cfg.ExcludeTraits = []string{"Stance Master", "The Champ"}

	got := BuildPool(cat, &cfg)
	want := []Champion{
		champ("Kennen", 1, "Supreme Cells", "Protector", "Sorcerer"),
		champ("Aatrox", 1, "Mighty Mech", "Heavyweight"),
		champ("Zac", 1, "Wraith", "Heavyweight"),
		champ("Braum", 5, "Luchador", "Bastion"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildPool mismatch (-want +got):\n%s", diff)
	}

	// catalog untouched by stripping
	if n := len(cat.Champions[3].Traits); n != 3 {
		t.Errorf("raw Braum traits modified: got %d traits, want 3", n)
	}
}

func TestBuildPoolNeverKeepsExcluded(t *testing.T) {
	cat := &Catalog{Champions: []RawChampion{
		raw("A", 1, "X", "Y"),
		raw("B", 2, "Y"),
		raw("C", 3, "X"),
	}}
	cfg := testConfig(1, nil)
	cfg.ExcludeChampions = []string{"B"}
	cfg.ExcludeTraits = []string{"X"}

	for _, c := range BuildPool(cat, &cfg) {
		if c.Name == "B" {
			t.Errorf("excluded champion %s in pool", c.Name)
		}
		for _, tr := range c.Traits {
			if tr == "X" {
				t.Errorf("%s kept excluded trait %s", c.Name, tr)
			}
		}
	}
}

func TestCompareChampionsTotalOrder(t *testing.T) {
	pool := []Champion{
		champ("b", 2, "x"),
		champ("a", 2, "x"),
		champ("c", 1, "x"),
		champ("d", 2, "x", "y"),
		champ("e", 1, "x", "y", "z"),
	}
	sortPool(pool)

	var names []string
	for _, c := range pool {
		names = append(names, c.Name)
	}
	if diff := cmp.Diff([]string{"e", "c", "d", "a", "b"}, names); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	for i := 0; i < len(pool); i++ {
		for j := 0; j < len(pool); j++ {
			c := compareChampions(pool[i], pool[j])
			switch {
			case i == j && c != 0:
				t.Errorf("compare(%s,%s) = %d, want 0", pool[i].Name, pool[j].Name, c)
			case i < j && c >= 0:
				t.Errorf("compare(%s,%s) = %d, want < 0", pool[i].Name, pool[j].Name, c)
			case i > j && c <= 0:
				t.Errorf("compare(%s,%s) = %d, want > 0", pool[i].Name, pool[j].Name, c)
			}
		}
	}
}

func TestPoolPreview(t *testing.T) {
	pool := []Champion{champ("A", 1, "X", "Y"), champ("B", 2, "Z"), champ("C", 3, "Z")}
	got := poolPreview(pool, 2)
	if want := "A(1)[X|Y] | B(2)[Z] ..."; got != want {
		t.Errorf("poolPreview = %q, want %q", got, want)
	}
	if got := poolPreview(pool, 5); strings.HasSuffix(got, "...") {
		t.Errorf("poolPreview with room for all = %q, want no ellipsis", got)
	}
}
