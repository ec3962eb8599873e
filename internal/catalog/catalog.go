// Package catalog holds the immutable lookup tables a Davenport job
// setup is calculated against: material guidelines, cycle-rate gearing
// and the cam inventory. The calculation packages under internal/calc
// take these as plain values and never load or mutate them.
package catalog

// OperationKind classifies a tool operation for feed defaults.
type OperationKind string

const (
	KindDrill       OperationKind = "drill"
	KindCounterbore OperationKind = "counterbore"
	KindForm        OperationKind = "form"
	KindCutoff      OperationKind = "cutoff"
	KindReam        OperationKind = "ream"
	KindKnurl       OperationKind = "knurl"
	KindThread      OperationKind = "thread"
)

// ThreadMethod is one of the three Davenport threading setups.
type ThreadMethod string

const (
	Method6to1 ThreadMethod = "6:1"
	Method4to1 ThreadMethod = "4:1"
	Method2to1 ThreadMethod = "2:1"
)

// Block-setting dial range valid for every position on a Model B.
const (
	BlockSettingMin = 0.8
	BlockSettingMax = 1.2
)

// Material is one row of the material chart.
type Material struct {
	Name          string                    `json:"name"`
	SFM           float64                   `json:"sfm"`     // surface feet per minute guideline
	Density       float64                   `json:"density"` // lb/in^3
	Machinability int                       `json:"machinability"`
	Feeds         map[OperationKind]float64 `json:"feeds,omitempty"` // in/rev defaults
}

// MaterialCatalog is a name-keyed material chart.
type MaterialCatalog struct {
	materials map[string]Material
	names     []string
}

// NewMaterialCatalog builds a catalog preserving the given order.
func NewMaterialCatalog(materials []Material) MaterialCatalog {
	c := MaterialCatalog{materials: make(map[string]Material, len(materials))}
	for _, m := range materials {
		if _, dup := c.materials[m.Name]; dup {
			continue
		}
		c.materials[m.Name] = m
		c.names = append(c.names, m.Name)
	}
	return c
}

// Lookup returns the material by exact name.
func (c MaterialCatalog) Lookup(name string) (Material, bool) {
	m, ok := c.materials[name]
	return m, ok
}

// Names lists materials in chart order.
func (c MaterialCatalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len reports how many materials the chart holds.
func (c MaterialCatalog) Len() int { return len(c.names) }

// GearRatio is one driver/driven gear pairing.
type GearRatio struct {
	Driver int     `json:"driver"`
	Driven int     `json:"driven"`
	Ratio  float64 `json:"ratio"`
}

// GearSpec is the gearing entry for one machine cycle rate.
type GearSpec struct {
	CycleRate int         `json:"cycle_rate_cpm"`
	IndexTime float64     `json:"index_time_s"`
	Ratios    []GearRatio `json:"ratios"`
}

// ThreadGearing is the manual's threading gear train for a method.
type ThreadGearing struct {
	Method        ThreadMethod `json:"method"`
	Trains        []GearRatio  `json:"trains"`
	CombinedRatio float64      `json:"combined_ratio"` // threading RPM = work RPM x ratio
	CamSpaces     float64      `json:"cam_spaces"`     // hundredths of the 50-space cycle
	Description   string       `json:"description"`
}

// GearCatalog maps cycle rates to gearing and threading trains.
type GearCatalog struct {
	rates     map[int]GearSpec
	threading map[ThreadMethod]ThreadGearing
}

// NewGearCatalog builds a catalog from rate specs and threading trains.
func NewGearCatalog(rates []GearSpec, threading []ThreadGearing) GearCatalog {
	c := GearCatalog{
		rates:     make(map[int]GearSpec, len(rates)),
		threading: make(map[ThreadMethod]ThreadGearing, len(threading)),
	}
	for _, r := range rates {
		c.rates[r.CycleRate] = r
	}
	for _, t := range threading {
		c.threading[t.Method] = t
	}
	return c
}

// Rate returns the gearing entry for a cycle rate (45, 60 or 75 CPM).
func (c GearCatalog) Rate(cpm int) (GearSpec, bool) {
	g, ok := c.rates[cpm]
	return g, ok
}

// IndexTime returns the fixed index delay for a cycle rate.
func (c GearCatalog) IndexTime(cpm int) (float64, bool) {
	g, ok := c.rates[cpm]
	if !ok {
		return 0, false
	}
	return g.IndexTime, true
}

// ThreadingGears returns the gear train for a threading method at the
// given cycle rate. The manual publishes one train per method; the 60
// and 45 CPM charts reference the 75 CPM page, so the rate only gates
// that the machine supports it.
func (c GearCatalog) ThreadingGears(m ThreadMethod, cpm int) (ThreadGearing, bool) {
	if _, ok := c.rates[cpm]; !ok {
		return ThreadGearing{}, false
	}
	t, ok := c.threading[m]
	return t, ok
}

// CycleRates lists supported rates in descending order of speed.
func (c GearCatalog) CycleRates() []int {
	out := make([]int, 0, len(c.rates))
	for _, cpm := range []int{75, 60, 45} {
		if _, ok := c.rates[cpm]; ok {
			out = append(out, cpm)
		}
	}
	return out
}

// CamKind separates end-working from side-working cam lobes.
type CamKind string

const (
	CamTurning CamKind = "TURNING"
	CamForm    CamKind = "FORM"
	CamThread  CamKind = "THREADING"
)

// CamSpec is one catalog cam.
type CamSpec struct {
	ID   string  `json:"id"`   // e.g. "5-C-792"
	Size string  `json:"size"` // nominal fraction, e.g. "5/32"
	Rise float64 `json:"rise"` // inches
	Kind CamKind `json:"kind"`
}

// CamCatalog is the ordered cam inventory.
type CamCatalog struct {
	cams []CamSpec
}

// NewCamCatalog keeps the given order; selection logic relies on it
// only for deterministic iteration, not for rise ordering.
func NewCamCatalog(cams []CamSpec) CamCatalog {
	out := make([]CamSpec, len(cams))
	copy(out, cams)
	return CamCatalog{cams: out}
}

// All returns a copy of every cam.
func (c CamCatalog) All() []CamSpec {
	out := make([]CamSpec, len(c.cams))
	copy(out, c.cams)
	return out
}

// OfKind returns the cams of one kind, in catalog order.
func (c CamCatalog) OfKind(k CamKind) []CamSpec {
	var out []CamSpec
	for _, cam := range c.cams {
		if cam.Kind == k {
			out = append(out, cam)
		}
	}
	return out
}

// Len reports the inventory size.
func (c CamCatalog) Len() int { return len(c.cams) }

// Set bundles the three catalogs a full job recompute needs.
type Set struct {
	Materials MaterialCatalog
	Gears     GearCatalog
	Cams      CamCatalog
}
