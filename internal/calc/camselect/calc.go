// Package camselect picks a cam for a required rise. The block
// setting (rise needed divided by cam rise) must land on the dial
// between 0.8 and 1.2; among valid cams the smallest rise wins so cam
// travel is not wasted.
package camselect

import (
	"fmt"
	"math"

	"Davenport/internal/catalog"
)

// Selection is a chosen cam with its dial setting.
type Selection struct {
	Cam          catalog.CamSpec `json:"cam"`
	BlockSetting float64         `json:"block_setting"`
}

// NoCompatibleCamError reports that no candidate lands its block
// setting inside the valid range. Best carries the nearest miss so the
// caller can show how far out of tolerance the setup is.
type NoCompatibleCamError struct {
	RiseNeeded float64
	Best       *catalog.CamSpec
	BestBlock  float64
}

func (e *NoCompatibleCamError) Error() string {
	if e.Best == nil {
		return fmt.Sprintf("no cam available for rise %.4f\"", e.RiseNeeded)
	}
	return fmt.Sprintf("no cam holds block setting %.2g-%.2g for rise %.4f\"; closest is %s at %.3f",
		catalog.BlockSettingMin, catalog.BlockSettingMax, e.RiseNeeded, e.Best.ID, e.BestBlock)
}

// Select picks the smallest-rise candidate whose block setting falls
// inside [0.8, 1.2]. Candidates come pre-filtered by the caller (by
// cam kind, typically); order does not matter.
func Select(riseNeeded float64, candidates []catalog.CamSpec) (Selection, error) {
	if riseNeeded <= 0 {
		return Selection{}, fmt.Errorf("rise needed must be positive, got %g", riseNeeded)
	}

	var (
		chosen    *catalog.CamSpec
		chosenBlk float64
		best      *catalog.CamSpec
		bestBlk   float64
		bestDist  = math.Inf(1)
	)
	for i := range candidates {
		cam := candidates[i]
		if cam.Rise <= 0 {
			continue
		}
		block := riseNeeded / cam.Rise
		if block >= catalog.BlockSettingMin && block <= catalog.BlockSettingMax {
			if chosen == nil || cam.Rise < chosen.Rise {
				chosen = &candidates[i]
				chosenBlk = block
			}
			continue
		}
		// Track the nearest out-of-range candidate for diagnostics.
		dist := catalog.BlockSettingMin - block
		if block > catalog.BlockSettingMax {
			dist = block - catalog.BlockSettingMax
		}
		if dist < bestDist {
			bestDist = dist
			best = &candidates[i]
			bestBlk = block
		}
	}
	if chosen == nil {
		return Selection{}, &NoCompatibleCamError{RiseNeeded: riseNeeded, Best: best, BestBlock: bestBlk}
	}
	return Selection{Cam: *chosen, BlockSetting: chosenBlk}, nil
}

// SelectKind filters the catalog by cam kind before selecting.
func SelectKind(riseNeeded float64, cams catalog.CamCatalog, kind catalog.CamKind) (Selection, error) {
	return Select(riseNeeded, cams.OfKind(kind))
}
