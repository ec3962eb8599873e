package catalog

// Built-in charts for a 5-spindle Model B. Shops that keep their own
// charts in a workbook can load them instead (see loader.go); the
// values here follow the manufacturer data so the engine works with no
// external files.

// DefaultMaterials is the 7-material chart.
func DefaultMaterials() MaterialCatalog {
	return NewMaterialCatalog([]Material{
		{Name: "Steel", SFM: 150, Density: 0.284, Machinability: 75, Feeds: feedRow(0.0035, 0.005, 0.0025)},
		{Name: "Stainless Steel", SFM: 120, Density: 0.290, Machinability: 50, Feeds: feedRow(0.0030, 0.004, 0.0020)},
		{Name: "Brass", SFM: 300, Density: 0.307, Machinability: 100, Feeds: feedRow(0.0045, 0.006, 0.0030)},
		{Name: "Bronze", SFM: 200, Density: 0.320, Machinability: 90, Feeds: feedRow(0.0035, 0.005, 0.0025)},
		{Name: "Aluminum", SFM: 400, Density: 0.098, Machinability: 150, Feeds: feedRow(0.0050, 0.007, 0.0035)},
		{Name: "Cast Iron", SFM: 100, Density: 0.260, Machinability: 60, Feeds: feedRow(0.0030, 0.004, 0.0020)},
		{Name: "Tool Steel", SFM: 80, Density: 0.284, Machinability: 30, Feeds: feedRow(0.0020, 0.003, 0.0015)},
	})
}

func feedRow(drill, counterbore, form float64) map[OperationKind]float64 {
	return map[OperationKind]float64{
		KindDrill:       drill,
		KindCounterbore: counterbore,
		KindForm:        form,
	}
}

// DefaultGears carries the three cycle rates with the manual's fixed
// index times and the common spindle gear pairings.
func DefaultGears() GearCatalog {
	ratios := []GearRatio{
		{Driver: 44, Driven: 20, Ratio: 2.20},
		{Driver: 40, Driven: 24, Ratio: 1.667},
		{Driver: 36, Driven: 28, Ratio: 1.286},
		{Driver: 32, Driven: 32, Ratio: 1.00},
		{Driver: 28, Driven: 36, Ratio: 0.778},
		{Driver: 24, Driven: 40, Ratio: 0.60},
		{Driver: 20, Driven: 44, Ratio: 0.455},
	}
	rates := []GearSpec{
		{CycleRate: 75, IndexTime: 0.4, Ratios: ratios},
		{CycleRate: 60, IndexTime: 0.5, Ratios: ratios},
		{CycleRate: 45, IndexTime: 0.66, Ratios: ratios},
	}
	threading := []ThreadGearing{
		{
			Method:        Method6to1,
			Trains:        []GearRatio{{Driver: 32, Driven: 32, Ratio: 1.0}, {Driver: 21, Driven: 28, Ratio: 0.75}},
			CombinedRatio: 0.75,
			CamSpaces:     32.5,
			Description:   "Standard threading, steel",
		},
		{
			Method:        Method2to1,
			Trains:        []GearRatio{{Driver: 36, Driven: 27, Ratio: 4.0 / 3.0}},
			CombinedRatio: 4.0 / 3.0,
			CamSpaces:     25.0,
			Description:   "High speed threading, brass",
		},
		{
			Method:        Method4to1,
			Trains:        []GearRatio{{Driver: 20, Driven: 40, Ratio: 0.5}},
			CombinedRatio: 0.5,
			CamSpaces:     25.0,
			Description:   "Half speed threading",
		},
	}
	return NewGearCatalog(rates, threading)
}

// DefaultCams is the stock cam inventory, smallest rise first within
// each kind.
func DefaultCams() CamCatalog {
	return NewCamCatalog([]CamSpec{
		{ID: "5-C-786", Size: "1/16", Rise: 0.0650, Kind: CamTurning},
		{ID: "5-C-788", Size: "3/32", Rise: 0.0950, Kind: CamTurning},
		{ID: "5-C-790", Size: "1/8", Rise: 0.1200, Kind: CamTurning},
		{ID: "5-C-791", Size: "5/32", Rise: 0.1400, Kind: CamTurning},
		{ID: "5-C-792", Size: "3/16", Rise: 0.1650, Kind: CamTurning},
		{ID: "5-C-793", Size: "1/4", Rise: 0.2000, Kind: CamTurning},
		{ID: "5-C-794", Size: "5/16", Rise: 0.2500, Kind: CamTurning},
		{ID: "5-C-795", Size: "3/8", Rise: 0.3000, Kind: CamTurning},
		{ID: "5-F-310", Size: "3/32", Rise: 0.0900, Kind: CamForm},
		{ID: "5-F-312", Size: "1/8", Rise: 0.1250, Kind: CamForm},
		{ID: "5-F-315", Size: "5/32", Rise: 0.1563, Kind: CamForm},
		{ID: "5-F-318", Size: "3/16", Rise: 0.1875, Kind: CamForm},
		{ID: "5-F-322", Size: "1/4", Rise: 0.2500, Kind: CamForm},
		{ID: "5-T-101", Size: "1/8", Rise: 0.1250, Kind: CamThread},
		{ID: "5-T-104", Size: "1/4", Rise: 0.2500, Kind: CamThread},
		{ID: "5-T-108", Size: "NO. 452", Rise: 0.4520, Kind: CamThread},
		{ID: "5-T-110", Size: "NO. 490", Rise: 0.4900, Kind: CamThread},
		{ID: "5-T-112", Size: "NO. 550", Rise: 0.5500, Kind: CamThread},
	})
}

// DefaultSet bundles all built-in charts.
func DefaultSet() *Set {
	return &Set{
		Materials: DefaultMaterials(),
		Gears:     DefaultGears(),
		Cams:      DefaultCams(),
	}
}
