package thermo_data

import "kilngas/thermo"

// 异核分子
func heteroatomicSpecies() []SpeciesDef {
	return []SpeciesDef{
		{
			Name:        "CO",
			Composition: []ComponentDef{{"C", 1}, {"O", 1}},
			Model:       thermo.NASA7,
			Breakpoints: []float64{200.0, 1000.0, 3500.0},
			Data: [][]float64{
				{3.57953347e+00, -6.10353680e-04, 1.01681433e-06,
					9.07005884e-10, -9.04424499e-13, -1.43440860e+04,
					3.50840928},
				{2.71518561e+00, 2.06252743e-03, -9.98825771e-07,
					2.30053008e-10, -2.03647716e-14, -1.41518724e+04,
					7.81868772},
			},
			Transport: linear(98.1, 3.65, 1.95, 1.8),
		},
		{
			Name:        "CO2",
			Composition: []ComponentDef{{"C", 1}, {"O", 2}},
			Model:       thermo.NASA7,
			Breakpoints: []float64{200.0, 1000.0, 3500.0},
			Data: [][]float64{
				{2.35677352e+00, 8.98459677e-03, -7.12356269e-06,
					2.45919022e-09, -1.43699548e-13, -4.83719697e+04,
					9.90105222},
				{3.85746029e+00, 4.41437026e-03, -2.21481404e-06,
					5.23490188e-10, -4.72084164e-14, -4.87591660e+04,
					2.27163806},
			},
			Transport: linear(244.0, 3.763, 2.65, 2.1),
		},
		{
			Name:        "H2O",
			Composition: []ComponentDef{{"H", 2}, {"O", 1}},
			Model:       thermo.NASA7,
			Breakpoints: []float64{200.0, 1000.0, 3500.0},
			Data: [][]float64{
				{4.19864056e+00, -2.03643410e-03, 6.52040211e-06,
					-5.48797062e-09, 1.77197817e-12, -3.02937267e+04,
					-0.849032208},
				{3.03399249e+00, 2.17691804e-03, -1.64072518e-07,
					-9.70419870e-11, 1.68200992e-14, -3.00042971e+04,
					4.96677010},
			},
			Transport: linear(572.4, 2.605, 1.844, 4.0),
		},
	}
}
