package main

import (
	"sort"
	"strings"
)

func newSolution(team []Champion, traits []string) *Solution {
	members := make([]Champion, len(team))
	copy(members, team)

	s := &Solution{Team: members, Traits: traits, Score: tiebreakScore(members)}
	s.key = strings.Join(s.Names(), "|")
	return s
}

func tiebreakScore(team []Champion) Score {
	var sc Score
	for i := range team {
		switch team[i].Cost {
		case 5:
			sc.Has5 = true
		case 4:
			sc.Has4 = true
		}
		sc.Sum += team[i].Cost
	}
	if len(team) > 0 {
		sc.Avg = float64(sc.Sum) / float64(len(team))
	}
	return sc
}

// Names returns the member names in sorted order.
func (s *Solution) Names() []string {
	names := make([]string, len(s.Team))
	for i := range s.Team {
		names[i] = s.Team[i].Name
	}
	sort.Strings(names)
	return names
}

// compareSolutions orders two same-size solutions; negative means a is
// better. Rules in order: no 5-cost, no 4-cost, lower average cost, lower
// total cost, sorted member names.
func compareSolutions(a, b *Solution) int {
	if a.Score.Has5 != b.Score.Has5 {
		return boolOrder(a.Score.Has5)
	}
	if a.Score.Has4 != b.Score.Has4 {
		return boolOrder(a.Score.Has4)
	}
	if a.Score.Avg != b.Score.Avg {
		if a.Score.Avg < b.Score.Avg {
			return -1
		}
		return 1
	}
	if a.Score.Sum != b.Score.Sum {
		return a.Score.Sum - b.Score.Sum
	}
	return strings.Compare(a.key, b.key)
}

// boolOrder ranks a side that has the unwanted property last.
func boolOrder(has bool) int {
	if has {
		return 1
	}
	return -1
}
