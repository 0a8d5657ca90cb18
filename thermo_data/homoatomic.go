package thermo_data

import "kilngas/thermo"

// 同核双原子分子
func homoatomicSpecies() []SpeciesDef {
	return []SpeciesDef{
		{
			Name:        "H2",
			Composition: []ComponentDef{{"H", 2}},
			Model:       thermo.NASA7,
			Breakpoints: []float64{200.0, 1000.0, 3500.0},
			Data: [][]float64{
				{2.34433112e+00, 7.98052075e-03, -1.94781510e-05,
					2.01572094e-08, -7.37611761e-12, -917.935173,
					0.683010238},
				{3.33727920e+00, -4.94024731e-05, 4.99456778e-07,
					-1.79566394e-10, 2.00255376e-14, -950.158922,
					-3.20502331},
			},
			Transport: linear(38.0, 2.92, 0.79, 280.0),
		},
		{
			Name:        "N2",
			Composition: []ComponentDef{{"N", 2}},
			Model:       thermo.NASA7,
			Breakpoints: []float64{300.0, 1000.0, 5000.0},
			Data: [][]float64{
				{3.29867700e+00, 1.40824040e-03, -3.96322200e-06,
					5.64151500e-09, -2.44485400e-12, -1.02089990e+03,
					3.95037200},
				{2.92664000e+00, 1.48797680e-03, -5.68476000e-07,
					1.00970380e-10, -6.75335100e-15, -9.22797700e+02,
					5.98052800},
			},
			Transport: linear(97.53, 3.621, 1.76, 4.0),
		},
		{
			Name:        "O2",
			Composition: []ComponentDef{{"O", 2}},
			Model:       thermo.NASA7,
			Breakpoints: []float64{200.0, 1000.0, 3500.0},
			Data: [][]float64{
				{3.78245636e+00, -2.99673416e-03, 9.84730201e-06,
					-9.68129509e-09, 3.24372837e-12, -1.06394356e+03,
					3.65767573},
				{3.28253784e+00, 1.48308754e-03, -7.57966669e-07,
					2.09470555e-10, -2.16717794e-14, -1.08845772e+03,
					5.45323129},
			},
			Transport: linear(107.4, 3.458, 1.6, 3.8),
		},
	}
}
