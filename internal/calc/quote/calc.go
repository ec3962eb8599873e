// Package quote prices a run of parts from the bar economics of the
// job setup: bars and pounds of stock for each quantity break, material
// cost and the per-part share.
package quote

import (
	"fmt"
	"math"

	"Davenport/internal/calc/jobsetup"
	"Davenport/internal/catalog"
)

type Input struct {
	Setup        jobsetup.Input `json:"setup"`
	PricePerLb   float64        `json:"price_per_lb"`
	Quantities   []int          `json:"quantities"`
	ScrapPercent float64        `json:"scrap_percent,omitempty"`
}

type Line struct {
	Quantity    int     `json:"quantity"`
	Bars        int     `json:"bars"`
	WeightLb    float64 `json:"weight_lb"`
	Cost        float64 `json:"cost"`
	CostPerPart float64 `json:"cost_per_part"`
}

type Result struct {
	Setup jobsetup.Result `json:"setup"`
	Lines []Line          `json:"lines"`
}

// Build produces a quote line for each quantity break.
func Build(in Input, materials catalog.MaterialCatalog) (Result, error) {
	if in.PricePerLb <= 0 {
		return Result{}, fmt.Errorf("price per pound must be positive, got %g", in.PricePerLb)
	}
	if len(in.Quantities) == 0 {
		return Result{}, fmt.Errorf("at least one quantity is required")
	}
	if in.ScrapPercent < 0 || in.ScrapPercent >= 100 {
		return Result{}, fmt.Errorf("scrap percent %g out of range", in.ScrapPercent)
	}
	setup, err := jobsetup.Calculate(in.Setup, materials)
	if err != nil {
		return Result{}, err
	}
	if setup.PartsPerBar < 1 {
		return Result{}, fmt.Errorf("bar yields no parts: per-part length %g exceeds usable length %g", setup.PerPartLength, setup.UsableBarLength)
	}

	scrap := 1.0 + in.ScrapPercent/100.0
	perPartLb := setup.BarWeightLb / setup.PartsPerBar

	res := Result{Setup: setup}
	for _, qty := range in.Quantities {
		if qty <= 0 {
			return Result{}, fmt.Errorf("quantity must be positive, got %d", qty)
		}
		gross := float64(qty) * scrap
		bars := int(math.Ceil(gross / setup.PartsPerBar))
		weight := gross * perPartLb
		cost := weight * in.PricePerLb
		res.Lines = append(res.Lines, Line{
			Quantity:    qty,
			Bars:        bars,
			WeightLb:    weight,
			Cost:        cost,
			CostPerPart: cost / float64(qty),
		})
	}
	return res, nil
}
