// Package cycletime turns per-position effective revolutions into
// seconds and finds the operation that paces the machine. On a
// multi-spindle all positions cut at once, so the cycle is the longest
// single operation plus the fixed index time.
package cycletime

import (
	"errors"
	"fmt"
)

// ErrEmptyOperationSet is returned when there is nothing to estimate.
var ErrEmptyOperationSet = errors.New("no operations to estimate")

// Operation is one position's workload.
type Operation struct {
	Position    int     `json:"position"` // spindle position 1..5
	Name        string  `json:"name,omitempty"`
	Revolutions float64 `json:"revolutions"`
	RPM         float64 `json:"rpm"`
}

// OperationTime is the computed time for one position.
type OperationTime struct {
	Position int     `json:"position"`
	Name     string  `json:"name,omitempty"`
	Seconds  float64 `json:"seconds"`
}

type Result struct {
	Operations       []OperationTime `json:"operations"`
	CriticalPosition int             `json:"critical_position"`
	CriticalName     string          `json:"critical_name,omitempty"`
	CriticalSeconds  float64         `json:"critical_seconds"`
	IndexSeconds     float64         `json:"index_seconds"`
	TotalSeconds     float64         `json:"total_seconds"`
}

// Estimate computes per-operation times and the aggregate cycle time.
// Per-operation seconds = revolutions / (RPM/60). The critical
// operation is the longest; ties go to the lowest spindle position so
// repeated runs report the same bottleneck.
func Estimate(ops []Operation, indexTime float64) (Result, error) {
	if len(ops) == 0 {
		return Result{}, ErrEmptyOperationSet
	}
	if indexTime < 0 {
		return Result{}, fmt.Errorf("index time must not be negative: %g", indexTime)
	}

	res := Result{
		Operations:   make([]OperationTime, 0, len(ops)),
		IndexSeconds: indexTime,
	}
	critical := -1
	for _, op := range ops {
		if op.RPM <= 0 {
			return Result{}, fmt.Errorf("position %d: rpm must be positive, got %g", op.Position, op.RPM)
		}
		if op.Revolutions < 0 {
			return Result{}, fmt.Errorf("position %d: revolutions must not be negative, got %g", op.Position, op.Revolutions)
		}
		t := OperationTime{
			Position: op.Position,
			Name:     op.Name,
			Seconds:  op.Revolutions / (op.RPM / 60.0),
		}
		res.Operations = append(res.Operations, t)

		switch {
		case critical < 0,
			t.Seconds > res.CriticalSeconds,
			t.Seconds == res.CriticalSeconds && t.Position < res.Operations[critical].Position:
			critical = len(res.Operations) - 1
			res.CriticalSeconds = t.Seconds
		}
	}
	res.CriticalPosition = res.Operations[critical].Position
	res.CriticalName = res.Operations[critical].Name
	res.TotalSeconds = res.CriticalSeconds + indexTime
	return res, nil
}
