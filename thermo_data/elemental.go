package thermo_data

import "kilngas/thermo"

// 单原子物种
func elementalSpecies() []SpeciesDef {
	return []SpeciesDef{
		{
			Name:        "H",
			Composition: []ComponentDef{{"H", 1}},
			Model:       thermo.NASA7,
			Breakpoints: []float64{200.0, 1000.0, 3500.0},
			Data: [][]float64{
				{2.50000000e+00, 7.05332819e-13, -1.99591964e-15,
					2.30081632e-18, -9.27732332e-22, 2.54736599e+04,
					-0.446682853},
				{2.50000001e+00, -2.30842973e-11, 1.61561948e-14,
					-4.73515235e-18, 4.98197357e-22, 2.54736599e+04,
					-0.446682914},
			},
			Transport: atom(145.0, 2.05),
		},
		{
			Name:        "C",
			Composition: []ComponentDef{{"C", 1}},
			Model:       thermo.NASA7,
			Breakpoints: []float64{200.0, 1000.0, 3500.0},
			Data: [][]float64{
				{2.55423955e+00, -3.21537724e-04, 7.33792245e-07,
					-7.32234889e-10, 2.66521446e-13, 8.54438832e+04,
					4.53130848},
				{2.49266888e+00, 4.79889284e-05, -7.24335020e-08,
					3.74291029e-11, -4.87277893e-15, 8.54512953e+04,
					4.80150373},
			},
			Transport: atom(71.4, 3.298),
		},
		{
			Name:        "N",
			Composition: []ComponentDef{{"N", 1}},
			Model:       thermo.NASA7,
			Breakpoints: []float64{200.0, 1000.0, 6000.0},
			Data: [][]float64{
				{2.50000000e+00, 0.00000000e+00, 0.00000000e+00,
					0.00000000e+00, 0.00000000e+00, 5.61046370e+04,
					4.1939087},
				{2.41594290e+00, 1.74890650e-04, -1.19023690e-07,
					3.02262450e-11, -2.03609820e-15, 5.61337730e+04,
					4.6496096},
			},
			Transport: atom(71.4, 3.298),
		},
		{
			Name:        "O",
			Composition: []ComponentDef{{"O", 1}},
			Model:       thermo.NASA7,
			Breakpoints: []float64{200.0, 1000.0, 3500.0},
			Data: [][]float64{
				{3.16826710e+00, -3.27931884e-03, 6.64306396e-06,
					-6.12806624e-09, 2.11265971e-12, 2.91222592e+04,
					2.05193346},
				{2.56942078e+00, -8.59741137e-05, 4.19484589e-08,
					-1.00177799e-11, 1.22833691e-15, 2.92175791e+04,
					4.78433864},
			},
			Transport: atom(80.0, 2.75),
		},
		{
			Name:        "AR",
			Composition: []ComponentDef{{"Ar", 1}},
			Model:       thermo.NASA7,
			Breakpoints: []float64{200.0, 1000.0, 5000.0},
			Data: [][]float64{
				{2.50000000e+00, 0.00000000e+00, 0.00000000e+00,
					0.00000000e+00, 0.00000000e+00, -7.45375000e+02,
					4.36600000},
				{2.50000000e+00, 0.00000000e+00, 0.00000000e+00,
					0.00000000e+00, 0.00000000e+00, -7.45375000e+02,
					4.36600000},
			},
			Transport: atom(136.5, 3.33),
		},
	}
}
