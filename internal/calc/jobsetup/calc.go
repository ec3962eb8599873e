// Package jobsetup covers the front page of the setup sheet: spindle
// speed from the material's surface-speed guideline and bar economics
// (parts per bar, bar weight, bars for an order).
package jobsetup

import (
	"fmt"
	"math"

	"Davenport/internal/catalog"
)

type Input struct {
	Material      string  `json:"material"`
	BarDiameter   float64 `json:"bar_diameter_in"`
	BarShape      string  `json:"bar_shape,omitempty"` // Round, Hex, Square, Tube
	PartLength    float64 `json:"part_length_in"`
	CutoffWidth   float64 `json:"cutoff_width_in"`
	FaceoffAmount float64 `json:"faceoff_in,omitempty"`
	BarLength     float64 `json:"bar_length_in"`
	RemnantLength float64 `json:"remnant_in"`
	SFM           float64 `json:"sfm,omitempty"` // 0 = material guideline
	Quantity      int     `json:"quantity,omitempty"`
}

type Result struct {
	SFM             float64 `json:"sfm"`
	RPM             float64 `json:"rpm"`
	UsableBarLength float64 `json:"usable_bar_length_in"`
	PerPartLength   float64 `json:"per_part_length_in"`
	PartsPerBar     float64 `json:"parts_per_bar"`
	BarWeightLb     float64 `json:"bar_weight_lb"`
	BarsRequired    int     `json:"bars_required,omitempty"`
}

// Calculate derives RPM and bar economics from the job setup.
func Calculate(in Input, materials catalog.MaterialCatalog) (Result, error) {
	mat, ok := materials.Lookup(in.Material)
	if !ok {
		return Result{}, fmt.Errorf("unknown material %q", in.Material)
	}
	if in.BarDiameter <= 0 {
		return Result{}, fmt.Errorf("bar diameter must be positive, got %g", in.BarDiameter)
	}
	if in.PartLength <= 0 || in.CutoffWidth <= 0 || in.FaceoffAmount < 0 {
		return Result{}, fmt.Errorf("part length and cutoff width must be positive")
	}
	if in.BarLength <= 0 || in.RemnantLength < 0 || in.RemnantLength >= in.BarLength {
		return Result{}, fmt.Errorf("remnant %g must be shorter than the bar %g", in.RemnantLength, in.BarLength)
	}

	sfm := in.SFM
	if sfm <= 0 {
		sfm = mat.SFM
	}
	// RPM = SFM x 12 / (pi x D)
	rpm := sfm * 12.0 / (math.Pi * in.BarDiameter)

	usable := in.BarLength - in.RemnantLength
	perPart := in.PartLength + in.CutoffWidth + in.FaceoffAmount
	partsPerBar := math.Floor(usable / perPart)
	// Round stock cross-section; hex and square run slightly heavy but
	// the quote chart treats them as round.
	weight := math.Pi / 4.0 * in.BarDiameter * in.BarDiameter * usable * mat.Density

	res := Result{
		SFM:             sfm,
		RPM:             rpm,
		UsableBarLength: usable,
		PerPartLength:   perPart,
		PartsPerBar:     partsPerBar,
		BarWeightLb:     weight,
	}
	if in.Quantity > 0 && partsPerBar > 0 {
		res.BarsRequired = int(math.Ceil(float64(in.Quantity) / partsPerBar))
	}
	return res, nil
}
