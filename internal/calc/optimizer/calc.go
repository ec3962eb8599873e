// Package optimizer reviews a full set of position times, names the
// operation pacing the cycle, and suggests where halving a cut over
// two cycles would help. Suggestions are advisory only; nothing here
// mutates the job.
package optimizer

import (
	"Davenport/internal/calc/cycletime"
	"Davenport/internal/calc/revs"
	"Davenport/internal/catalog"
)

// DefaultSlackThreshold flags operations running above this fraction
// of the critical time.
const DefaultSlackThreshold = 0.8

// PositionInput is one spindle position's operation.
type PositionInput struct {
	Position   int                   `json:"position"`
	Name       string                `json:"name,omitempty"`
	Kind       catalog.OperationKind `json:"kind"`
	Dimension  float64               `json:"dimension_in"`
	FeedPerRev float64               `json:"feed_per_rev,omitempty"`
	Material   string                `json:"material,omitempty"`
	RPM        float64               `json:"rpm"`
}

// Suggestion proposes splitting one operation across two cycles.
type Suggestion struct {
	Position       int     `json:"position"`
	Name           string  `json:"name,omitempty"`
	Seconds        float64 `json:"seconds"`
	SplitDimension float64 `json:"split_dimension_in"`
	SplitSeconds   float64 `json:"split_seconds"`
}

// PositionFailure records a per-position calculation error without
// failing the rest of the job.
type PositionFailure struct {
	Position int    `json:"position"`
	Error    string `json:"error"`
}

type Result struct {
	Cycle       cycletime.Result  `json:"cycle"`
	Suggestions []Suggestion      `json:"suggestions,omitempty"`
	Failures    []PositionFailure `json:"failures,omitempty"`
}

// Optimizer holds the tuning knobs.
type Optimizer struct {
	SlackThreshold float64
	Materials      catalog.MaterialCatalog
}

// New returns an optimizer with the default slack threshold over the
// given material chart.
func New(materials catalog.MaterialCatalog) *Optimizer {
	return &Optimizer{SlackThreshold: DefaultSlackThreshold, Materials: materials}
}

// Optimize computes each position's time, finds the critical
// operation, and proposes splits for heavy non-critical operations. A
// position that fails to calculate is reported in Failures and
// excluded from the cycle; only an entirely empty or entirely failed
// set is an error.
func (o *Optimizer) Optimize(positions []PositionInput, indexTime float64) (Result, error) {
	slack := o.SlackThreshold
	if slack <= 0 {
		slack = DefaultSlackThreshold
	}

	var res Result
	ops := make([]cycletime.Operation, 0, len(positions))
	byPosition := make(map[int]PositionInput, len(positions))
	for _, p := range positions {
		rr, err := revs.Calculate(revs.Input{
			Kind:       p.Kind,
			Dimension:  p.Dimension,
			FeedPerRev: p.FeedPerRev,
			Material:   p.Material,
		}, o.Materials)
		if err != nil {
			res.Failures = append(res.Failures, PositionFailure{Position: p.Position, Error: err.Error()})
			continue
		}
		if p.RPM <= 0 {
			res.Failures = append(res.Failures, PositionFailure{Position: p.Position, Error: "rpm must be positive"})
			continue
		}
		ops = append(ops, cycletime.Operation{
			Position:    p.Position,
			Name:        p.Name,
			Revolutions: rr.Revolutions,
			RPM:         p.RPM,
		})
		byPosition[p.Position] = p
	}

	cycle, err := cycletime.Estimate(ops, indexTime)
	if err != nil {
		return Result{}, err
	}
	res.Cycle = cycle

	// An operation near the critical time is worth splitting over two
	// cycles when its half stays under the current bottleneck, so the
	// rebalance cannot create a new one.
	for _, op := range cycle.Operations {
		if op.Position == cycle.CriticalPosition {
			continue
		}
		if op.Seconds <= slack*cycle.CriticalSeconds {
			continue
		}
		half := op.Seconds / 2.0
		if half >= cycle.CriticalSeconds {
			continue
		}
		in := byPosition[op.Position]
		res.Suggestions = append(res.Suggestions, Suggestion{
			Position:       op.Position,
			Name:           op.Name,
			Seconds:        op.Seconds,
			SplitDimension: in.Dimension / 2.0,
			SplitSeconds:   half,
		})
	}
	return res, nil
}
