package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Load reads the material and cam charts from a workbook. Shops keep
// these as spreadsheets, one chart per sheet:
//
//	Materials: name, sfm, density, machinability, drill feed, counterbore feed, form feed
//	Cams:      id, size, rise, kind
//
// The first row of each sheet is a header. A missing sheet falls back
// to the built-in chart; gear and index-time data is fixed by the
// machine and never loaded. Malformed rows are skipped, matching how
// the charts are maintained by hand.
func Load(r io.Reader) (*Set, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("catalog workbook: %w", err)
	}
	defer f.Close()

	set := DefaultSet()

	if rows, err := f.GetRows("Materials"); err == nil && len(rows) > 1 {
		materials, err := parseMaterialRows(rows[1:])
		if err != nil {
			return nil, err
		}
		set.Materials = NewMaterialCatalog(materials)
	}
	if rows, err := f.GetRows("Cams"); err == nil && len(rows) > 1 {
		cams, err := parseCamRows(rows[1:])
		if err != nil {
			return nil, err
		}
		set.Cams = NewCamCatalog(cams)
	}
	return set, nil
}

func parseMaterialRows(rows [][]string) ([]Material, error) {
	var out []Material
	for _, row := range rows {
		if len(row) < 2 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		m := Material{Name: strings.TrimSpace(row[0])}
		sfm, err := toFloat(row[1])
		if err != nil {
			continue
		}
		m.SFM = sfm
		if len(row) > 2 && row[2] != "" {
			m.Density, _ = toFloat(row[2])
		}
		if len(row) > 3 && row[3] != "" {
			mach, _ := toFloat(row[3])
			m.Machinability = int(mach)
		}
		feeds := make(map[OperationKind]float64)
		for i, kind := range []OperationKind{KindDrill, KindCounterbore, KindForm} {
			col := 4 + i
			if len(row) > col && row[col] != "" {
				if v, err := toFloat(row[col]); err == nil && v > 0 {
					feeds[kind] = v
				}
			}
		}
		if len(feeds) > 0 {
			m.Feeds = feeds
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("catalog workbook: Materials sheet has no usable rows")
	}
	return out, nil
}

func parseCamRows(rows [][]string) ([]CamSpec, error) {
	var out []CamSpec
	for _, row := range rows {
		if len(row) < 3 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		rise, err := toFloat(row[2])
		if err != nil || rise <= 0 {
			continue
		}
		kind := CamTurning
		if len(row) > 3 {
			switch strings.ToUpper(strings.TrimSpace(row[3])) {
			case "FORM":
				kind = CamForm
			case "THREADING", "THREAD":
				kind = CamThread
			}
		}
		out = append(out, CamSpec{
			ID:   strings.TrimSpace(row[0]),
			Size: strings.TrimSpace(row[1]),
			Rise: rise,
			Kind: kind,
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("catalog workbook: Cams sheet has no usable rows")
	}
	return out, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(strings.TrimSpace(s), "%f", &v)
	return v, err
}
