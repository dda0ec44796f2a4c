// ABOUTME: Scenario selection by fuzzy pattern over "group/name" IDs
// ABOUTME: Matching uses sahilm/fuzzy; selected scenarios keep catalogue order

package bench

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ErrNoScenarios is returned when a filter selects nothing.
var ErrNoScenarios = errors.New("bench: no scenarios match")

// scenarioSource adapts a scenario list to fuzzy.Source.
type scenarioSource []Scenario

func (s scenarioSource) String(i int) string { return s[i].ID() }
func (s scenarioSource) Len() int            { return len(s) }

// Select returns the scenarios whose ID fuzzy-matches any of the
// comma-separated patterns. An empty pattern selects every scenario.
func Select(all []Scenario, pattern string) ([]Scenario, error) {
	if strings.TrimSpace(pattern) == "" {
		if len(all) == 0 {
			return nil, ErrNoScenarios
		}
		return slices.Clone(all), nil
	}

	picked := make(map[int]bool)
	for _, p := range strings.Split(pattern, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		for _, m := range fuzzy.FindFrom(p, scenarioSource(all)) {
			picked[m.Index] = true
		}
	}
	if len(picked) == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoScenarios, pattern)
	}

	selected := make([]Scenario, 0, len(picked))
	for i, s := range all {
		if picked[i] {
			selected = append(selected, s)
		}
	}
	return selected, nil
}
