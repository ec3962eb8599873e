// Package revs computes the effective revolutions an operation needs:
// how many spindle turns the cam must feed the tool through to cover
// the working dimension at the chosen feed per revolution.
package revs

import (
	"fmt"

	"Davenport/internal/catalog"
)

// Manual feed-per-revolution constants by operation kind, used when
// neither the caller nor the material chart supplies a feed. Cutoff is
// deliberately absent: its feed comes from the wall-thickness table
// (see internal/calc/cutoff).
var defaultFeeds = map[catalog.OperationKind]float64{
	catalog.KindForm:        0.0025,
	catalog.KindCounterbore: 0.005,
	catalog.KindDrill:       0.0035,
}

// InvalidInputError reports a non-physical dimension or feed.
type InvalidInputError struct {
	Field string
	Value float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %g", e.Field, e.Value)
}

type Input struct {
	Kind       catalog.OperationKind `json:"kind"`
	Dimension  float64               `json:"dimension_in"`             // depth or length of cut
	FeedPerRev float64               `json:"feed_per_rev,omitempty"`   // 0 = use default
	Material   string                `json:"material,omitempty"`
}

type Result struct {
	Revolutions float64 `json:"revolutions"`
	FeedPerRev  float64 `json:"feed_per_rev"` // the feed actually applied
}

// Compute is the bare contract: revolutions = dimension / feedPerRev.
func Compute(dimension, feedPerRev float64) (float64, error) {
	if dimension < 0 {
		return 0, &InvalidInputError{Field: "dimension", Value: dimension}
	}
	if feedPerRev <= 0 {
		return 0, &InvalidInputError{Field: "feed per revolution", Value: feedPerRev}
	}
	return dimension / feedPerRev, nil
}

// Calculate resolves the feed (explicit override, then the material
// chart, then the manual constant for the kind) and computes the
// effective revolutions.
func Calculate(in Input, materials catalog.MaterialCatalog) (Result, error) {
	feed := in.FeedPerRev
	if feed == 0 {
		feed = DefaultFeed(in.Kind, in.Material, materials)
	}
	if feed <= 0 {
		return Result{}, &InvalidInputError{Field: "feed per revolution", Value: feed}
	}
	r, err := Compute(in.Dimension, feed)
	if err != nil {
		return Result{}, err
	}
	return Result{Revolutions: r, FeedPerRev: feed}, nil
}

// DefaultFeed returns the feed for a kind, preferring the material
// chart over the manual constant. Zero means no default exists and the
// caller must supply one.
func DefaultFeed(kind catalog.OperationKind, material string, materials catalog.MaterialCatalog) float64 {
	if material != "" {
		if m, ok := materials.Lookup(material); ok {
			if f, ok := m.Feeds[kind]; ok && f > 0 {
				return f
			}
		}
	}
	return defaultFeeds[kind]
}
