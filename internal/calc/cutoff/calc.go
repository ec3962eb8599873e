// Package cutoff sizes the parting operation. The tool only has to
// cross the wall of the stock, so the working dimension is
// (OD - ID) / 2, and the feed per revolution comes from the manual's
// cam-size table rather than a fixed constant.
package cutoff

import (
	"fmt"

	"Davenport/internal/calc/revs"
)

// InvalidGeometryError reports a bore at or beyond the outside
// diameter.
type InvalidGeometryError struct {
	OD float64
	ID float64
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("inner diameter %.4f\" must be smaller than outer diameter %.4f\"", e.ID, e.OD)
}

// Manual cutoff feed per revolution by cam size.
var camFeeds = map[string]float64{
	"1/16": 0.0020,
	"3/32": 0.0025,
	"1/8":  0.0030,
	"5/32": 0.0035,
	"3/16": 0.0040,
	"1/4":  0.0045,
	"5/16": 0.0050,
	"3/8":  0.0055,
}

type Input struct {
	OD      float64 `json:"od_in"`
	ID      float64 `json:"id_in"` // 0 for solid bar
	CamSize string  `json:"cam_size"`
}

type Result struct {
	WallThickness float64 `json:"wall_thickness_in"`
	FeedPerRev    float64 `json:"feed_per_rev"`
	Revolutions   float64 `json:"revolutions"` // hundredths, the cam-space unit
}

// Wall computes the wall thickness of the stock.
func Wall(od, id float64) (float64, error) {
	if od <= 0 {
		return 0, &InvalidGeometryError{OD: od, ID: id}
	}
	if id < 0 || id >= od {
		return 0, &InvalidGeometryError{OD: od, ID: id}
	}
	return (od - id) / 2.0, nil
}

// FeedForCam returns the cutoff feed for a cam size from the manual
// table.
func FeedForCam(size string) (float64, bool) {
	f, ok := camFeeds[size]
	return f, ok
}

// Calculate derives the cutoff effective revolutions: wall thickness
// divided by the cam-size feed.
func Calculate(in Input) (Result, error) {
	wall, err := Wall(in.OD, in.ID)
	if err != nil {
		return Result{}, err
	}
	feed, ok := FeedForCam(in.CamSize)
	if !ok {
		return Result{}, fmt.Errorf("no cutoff feed tabulated for cam size %q", in.CamSize)
	}
	r, err := revs.Compute(wall, feed)
	if err != nil {
		return Result{}, err
	}
	return Result{WallThickness: wall, FeedPerRev: feed, Revolutions: r}, nil
}
