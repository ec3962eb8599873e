// Package knurl sizes a knurling pass: penetration from the tooth
// geometry chart, speed and feed from the material table, and the cam
// time the pass occupies.
package knurl

import "fmt"

// Method is how the knurl is presented to the work.
type Method string

const (
	MethodBump     Method = "bump"     // radial plunge
	MethodStraddle Method = "straddle" // opposed rolls
	MethodEnd      Method = "end"      // end-working traverse
)

// Documented spec domains.
const (
	MinTPI = 12
	MaxTPI = 40
	MinDP  = 64
	MaxDP  = 160
)

// OutOfRangeSpecError reports a knurl spec outside the supported
// domain, or an ambiguous one (both or neither of TPI/DP set).
type OutOfRangeSpecError struct {
	Unit  string // "tpi" or "dp"
	Value float64
	Min   float64
	Max   float64
}

func (e *OutOfRangeSpecError) Error() string {
	if e.Unit == "" {
		return "exactly one of tpi or dp must be specified"
	}
	return fmt.Sprintf("knurl %s %g outside supported range %g-%g", e.Unit, e.Value, e.Min, e.Max)
}

// UnknownMaterialError reports a material missing from the knurl
// speed/feed table.
type UnknownMaterialError struct {
	Material string
}

func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("material %q not in knurl speed/feed table", e.Material)
}

// toothBand is one row of the knurl geometry chart: full tooth depth
// for a pitch band. Penetration is half the tooth depth.
type toothBand struct {
	min, max float64
	depth    float64
}

var tpiDepths = []toothBand{
	{12, 14, 0.0100},
	{14, 18, 0.0080},
	{18, 23, 0.0070},
	{23, 28, 0.0060},
	{28, 40, 0.0050},
}

var dpDepths = []toothBand{
	{64, 80, 0.0080},
	{80, 128, 0.0060},
	{128, 160, 0.0044},
}

// speedFeed is the (material, method) recommendation row.
type speedFeed struct {
	sfm      float64
	bump     float64 // in/rev radial
	straddle float64
	end      float64 // in/rev traverse
}

// Fixed 7-material knurling table.
var materialTable = map[string]speedFeed{
	"Steel":           {sfm: 80, bump: 0.0010, straddle: 0.0012, end: 0.0080},
	"Stainless Steel": {sfm: 60, bump: 0.0008, straddle: 0.0010, end: 0.0060},
	"Brass":           {sfm: 160, bump: 0.0015, straddle: 0.0018, end: 0.0120},
	"Bronze":          {sfm: 110, bump: 0.0012, straddle: 0.0015, end: 0.0100},
	"Aluminum":        {sfm: 200, bump: 0.0015, straddle: 0.0018, end: 0.0140},
	"Cast Iron":       {sfm: 55, bump: 0.0008, straddle: 0.0010, end: 0.0055},
	"Tool Steel":      {sfm: 45, bump: 0.0006, straddle: 0.0008, end: 0.0045},
}

type Input struct {
	TPI      float64 `json:"tpi,omitempty"` // exactly one of TPI or DP
	DP       float64 `json:"dp,omitempty"`
	Method   Method  `json:"method"`
	Material string  `json:"material"`
	RPM      float64 `json:"rpm"`
	Length   float64 `json:"length_in,omitempty"` // traverse length, end method only
}

type Result struct {
	ToothDepth  float64 `json:"tooth_depth_in"`
	Penetration float64 `json:"penetration_in"`
	SFM         float64 `json:"sfm"`
	FeedPerRev  float64 `json:"feed_per_rev"`
	Revolutions float64 `json:"revolutions"`
	Seconds     float64 `json:"seconds"`
}

// ToothDepth resolves the chart depth for a TPI or DP spec. Exactly
// one of the two must be non-zero.
func ToothDepth(tpi, dp float64) (float64, error) {
	switch {
	case tpi != 0 && dp != 0, tpi == 0 && dp == 0:
		return 0, &OutOfRangeSpecError{}
	case tpi != 0:
		if tpi < MinTPI || tpi > MaxTPI {
			return 0, &OutOfRangeSpecError{Unit: "tpi", Value: tpi, Min: MinTPI, Max: MaxTPI}
		}
		return bandDepth(tpiDepths, tpi), nil
	default:
		if dp < MinDP || dp > MaxDP {
			return 0, &OutOfRangeSpecError{Unit: "dp", Value: dp, Min: MinDP, Max: MaxDP}
		}
		return bandDepth(dpDepths, dp), nil
	}
}

func bandDepth(bands []toothBand, v float64) float64 {
	for _, b := range bands {
		if v >= b.min && v <= b.max {
			return b.depth
		}
	}
	return bands[len(bands)-1].depth
}

// Calculate sizes the pass. Revolutions are what the cam must allow:
// the plunge to full penetration at the method feed, plus the traverse
// for end knurling.
func Calculate(in Input) (Result, error) {
	if in.RPM <= 0 {
		return Result{}, fmt.Errorf("rpm must be positive, got %g", in.RPM)
	}
	depth, err := ToothDepth(in.TPI, in.DP)
	if err != nil {
		return Result{}, err
	}
	row, ok := materialTable[in.Material]
	if !ok {
		return Result{}, &UnknownMaterialError{Material: in.Material}
	}

	var feed float64
	switch in.Method {
	case MethodBump:
		feed = row.bump
	case MethodStraddle:
		feed = row.straddle
	case MethodEnd:
		feed = row.end
	default:
		return Result{}, fmt.Errorf("unknown knurl method %q", in.Method)
	}

	penetration := depth / 2.0
	revolutions := penetration / feed
	if in.Method == MethodEnd && in.Length > 0 {
		revolutions += in.Length / feed
	}
	seconds := revolutions / (in.RPM / 60.0)

	return Result{
		ToothDepth:  depth,
		Penetration: penetration,
		SFM:         row.sfm,
		FeedPerRev:  feed,
		Revolutions: revolutions,
		Seconds:     seconds,
	}, nil
}

// Materials lists the table's materials; handy for UI pickers.
func Materials() []string {
	return []string{"Steel", "Stainless Steel", "Brass", "Bronze", "Aluminum", "Cast Iron", "Tool Steel"}
}
