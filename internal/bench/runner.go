// ABOUTME: Runner times scenarios with a stopwatch; groups run concurrently under errgroup
// ABOUTME: Results come back in input order regardless of how many jobs ran

package bench

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/callme-go/internal/log"
	"github.com/mauromedda/callme-go/internal/stopwatch"
)

// Result is the timing of one scenario run.
type Result struct {
	Group string
	Name  string
	// Subscribers is zero for scenarios that are not PerSubscriber.
	Subscribers int
	Iterations  int
	Elapsed     time.Duration
}

// Label is the row name: the scenario name plus the subscriber count.
func (r Result) Label() string {
	if r.Subscribers == 0 {
		return r.Name
	}
	return fmt.Sprintf("%s, %d subscribers", r.Name, r.Subscribers)
}

// Calls is the number of target invocations the run made.
func (r Result) Calls() int64 {
	return int64(r.Iterations) * int64(max(r.Subscribers, 1))
}

// Runner runs scenarios. Iterations is the number of calls each scenario
// makes; PerSubscriber scenarios make Iterations/subscribers notifications
// so every run performs about the same number of target calls.
type Runner struct {
	Iterations  int
	Subscribers []int
	// Jobs bounds how many groups run at once. Values below 1 mean 1.
	Jobs int
	// Now is the stopwatch clock; nil means time.Now.
	Now func() time.Time
}

// Run executes scenarios and returns one Result per run. Groups are
// independent and may run concurrently; scenarios inside a group run one
// after another. Run stops at the first failing scenario or when ctx is done.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) ([]Result, error) {
	groups := groupByName(scenarios)
	perGroup := make([][]Result, len(groups))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Jobs, 1))
	for i, group := range groups {
		g.Go(func() error {
			for _, s := range group {
				rs, err := r.runScenario(ctx, s)
				if err != nil {
					return err
				}
				perGroup[i] = append(perGroup[i], rs...)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var results []Result
	for _, rs := range perGroup {
		results = append(results, rs...)
	}
	return results, nil
}

func (r *Runner) runScenario(ctx context.Context, s Scenario) ([]Result, error) {
	counts := []int{0}
	if s.PerSubscriber {
		counts = r.Subscribers
	}

	results := make([]Result, 0, len(counts))
	for _, subs := range counts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := r.measure(s, subs)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.ID(), err)
		}
		log.Debug("bench: %s: %d iterations in %v", res.Label(), res.Iterations, res.Elapsed)
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) measure(s Scenario, subs int) (Result, error) {
	iterations := r.Iterations
	if subs > 0 {
		iterations = max(r.Iterations/subs, 1)
	}

	body, cleanup, err := s.Prepare(subs)
	if err != nil {
		return Result{}, fmt.Errorf("prepare: %w", err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	sw := stopwatch.New(r.Now)
	sw.Start()
	err = body(iterations)
	sw.Stop()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Group:       s.Group,
		Name:        s.Name,
		Subscribers: subs,
		Iterations:  iterations,
		Elapsed:     sw.Elapsed(),
	}, nil
}

// groupByName splits scenarios into groups in order of first appearance.
func groupByName(scenarios []Scenario) [][]Scenario {
	index := make(map[string]int)
	var groups [][]Scenario
	for _, s := range scenarios {
		i, ok := index[s.Group]
		if !ok {
			i = len(groups)
			index[s.Group] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], s)
	}
	return groups
}
