// Package thermo_data 内置的元素表和物种 NASA7 系数表
// 每次调用都返回新的副本，由 registry 负责校验和构造
package thermo_data

import "kilngas/thermo"

// ComponentDef 组成项，元素用符号引用
type ComponentDef struct {
	Element string
	Count   int
}

// SpeciesDef 物种原始定义
type SpeciesDef struct {
	Name        string
	Composition []ComponentDef
	Model       thermo.ModelKind
	Breakpoints []float64
	Data        [][]float64
	Transport   thermo.Transport
}

// Elements 内置元素
func Elements() []thermo.Element {
	return []thermo.Element{
		{Name: "H", AtomicNumber: 1, Mass: 1.008, Entropy298: 65340.0},
		{Name: "C", AtomicNumber: 6, Mass: 12.011, Entropy298: 5740.0},
		{Name: "N", AtomicNumber: 7, Mass: 14.007, Entropy298: 95804.5},
		{Name: "O", AtomicNumber: 8, Mass: 15.999, Entropy298: 102573.5},
		{Name: "Ar", AtomicNumber: 18, Mass: 39.95, Entropy298: 154845.0},
	}
}

// SpeciesTables 全部内置物种
func SpeciesTables() []SpeciesDef {
	var defs []SpeciesDef
	defs = append(defs, elementalSpecies()...)
	defs = append(defs, homoatomicSpecies()...)
	defs = append(defs, heteroatomicSpecies()...)
	defs = append(defs, hydrocarbonSpecies()...)
	return defs
}

func atom(wellDepth, diameter float64) thermo.Transport {
	return thermo.Transport{
		Phase:     thermo.GAS,
		Geometry:  thermo.ATOM,
		WellDepth: wellDepth,
		Diameter:  diameter,
	}
}

func linear(wellDepth, diameter, polarizability, rotRelax float64) thermo.Transport {
	return thermo.Transport{
		Phase:                thermo.GAS,
		Geometry:             thermo.LINEAR,
		WellDepth:            wellDepth,
		Diameter:             diameter,
		Polarizability:       polarizability,
		RotationalRelaxation: rotRelax,
	}
}
