// Package batch recomputes a whole job in one call: revolutions for
// every tooling position, cam selection for the rising positions, the
// cycle time and the optimizer's rebalancing advice.
package batch

import (
	"fmt"

	"Davenport/internal/calc/camselect"
	"Davenport/internal/calc/cycletime"
	"Davenport/internal/calc/optimizer"
	"Davenport/internal/calc/revs"
	"Davenport/internal/catalog"
)

type Position struct {
	Position   int                   `json:"position"`
	Name       string                `json:"name"`
	Kind       catalog.OperationKind `json:"kind"`
	Dimension  float64               `json:"dimension_in"`
	FeedPerRev float64               `json:"feed_per_rev,omitempty"`
	Material   string                `json:"material,omitempty"`
	RPM        float64               `json:"rpm"`
	CamRise    float64               `json:"cam_rise_in,omitempty"` // 0 = select from catalog
	CamKind    catalog.CamKind       `json:"cam_kind,omitempty"`
}

type Input struct {
	CycleRate      int        `json:"cycle_rate"`
	SlackThreshold float64    `json:"slack_threshold,omitempty"`
	Positions      []Position `json:"positions"`
}

type PositionResult struct {
	Position    int                  `json:"position"`
	Name        string               `json:"name"`
	Revolutions float64              `json:"revolutions"`
	FeedPerRev  float64              `json:"feed_per_rev"`
	Seconds     float64              `json:"seconds"`
	Cam         *camselect.Selection `json:"cam,omitempty"`
	CamError    string               `json:"cam_error,omitempty"`
}

type Result struct {
	Positions   []PositionResult            `json:"positions"`
	Cycle       cycletime.Result            `json:"cycle"`
	Suggestions []optimizer.Suggestion      `json:"suggestions,omitempty"`
	Failures    []optimizer.PositionFailure `json:"failures,omitempty"`
}

// Engine ties the per-tool calculators to one catalog set.
type Engine struct {
	Catalog *catalog.Set
}

func NewEngine(set *catalog.Set) *Engine {
	return &Engine{Catalog: set}
}

// Run computes the whole job. Per-position calculation failures are
// collected rather than aborting the run; a cam that cannot be matched
// leaves the position with CamError set.
func (e *Engine) Run(in Input) (Result, error) {
	if len(in.Positions) == 0 {
		return Result{}, fmt.Errorf("no positions")
	}
	indexTime, ok := e.Catalog.Gears.IndexTime(in.CycleRate)
	if !ok {
		return Result{}, fmt.Errorf("unknown cycle rate %d", in.CycleRate)
	}

	opt := optimizer.New(e.Catalog.Materials)
	if in.SlackThreshold > 0 {
		opt.SlackThreshold = in.SlackThreshold
	}
	positions := make([]optimizer.PositionInput, 0, len(in.Positions))
	for _, p := range in.Positions {
		positions = append(positions, optimizer.PositionInput{
			Position:   p.Position,
			Name:       p.Name,
			Kind:       p.Kind,
			Dimension:  p.Dimension,
			FeedPerRev: p.FeedPerRev,
			Material:   p.Material,
			RPM:        p.RPM,
		})
	}
	optRes, err := opt.Optimize(positions, indexTime)
	if err != nil {
		return Result{}, err
	}

	out := Result{
		Cycle:       optRes.Cycle,
		Suggestions: optRes.Suggestions,
		Failures:    optRes.Failures,
	}
	secondsByPos := make(map[int]cycletime.OperationTime, len(optRes.Cycle.Operations))
	for _, op := range optRes.Cycle.Operations {
		secondsByPos[op.Position] = op
	}
	for _, p := range in.Positions {
		pr := PositionResult{Position: p.Position, Name: p.Name}
		if op, ok := secondsByPos[p.Position]; ok {
			pr.Seconds = op.Seconds
		}
		if rr, err := revs.Calculate(revs.Input{
			Kind:       p.Kind,
			Dimension:  p.Dimension,
			FeedPerRev: p.FeedPerRev,
			Material:   p.Material,
		}, e.Catalog.Materials); err == nil {
			pr.Revolutions = rr.Revolutions
			pr.FeedPerRev = rr.FeedPerRev
			if p.CamRise > 0 || p.CamKind != "" {
				rise := p.CamRise
				if rise == 0 {
					rise = p.Dimension
				}
				kind := p.CamKind
				if kind == "" {
					kind = catalog.CamTurning
				}
				sel, err := camselect.SelectKind(rise, e.Catalog.Cams, kind)
				if err != nil {
					pr.CamError = err.Error()
				} else {
					pr.Cam = &sel
				}
			}
		}
		out.Positions = append(out.Positions, pr)
	}
	return out, nil
}
