package thermo_data

import "kilngas/thermo"

// 碳氢化合物
func hydrocarbonSpecies() []SpeciesDef {
	return []SpeciesDef{
		{
			Name:        "CH4",
			Composition: []ComponentDef{{"C", 1}, {"H", 4}},
			Model:       thermo.NASA7,
			Breakpoints: []float64{200.0, 1000.0, 3500.0},
			Data: [][]float64{
				{5.14987613e+00, -1.36709788e-02, 4.91800599e-05,
					-4.84743026e-08, 1.66693956e-11, -1.02466476e+04,
					-4.64130376},
				{7.48514950e-02, 1.33909467e-02, -5.73285809e-06,
					1.22292535e-09, -1.01815230e-13, -9.46834459e+03,
					18.4373180},
			},
			// 原表中 CH4 按线型分子记录
			Transport: linear(141.4, 3.746, 2.6, 13.0),
		},
	}
}
