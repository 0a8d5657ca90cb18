package thermo

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Species 化学物种：独占自己的热力学模型和输运参数，元素通过指针共享
// 构造后只读，字段只能通过访问器读取
type Species struct {
	name        string
	composition Composition
	thermo      *ThermoModel
	transport   Transport
}

func NewSpecies(name string, composition Composition, thermo *ThermoModel, transport Transport) (*Species, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.Wrap(ErrInvalidSpecies, "empty name")
	}
	if err := composition.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "species %s", name)
	}
	if thermo == nil {
		return nil, errors.Wrapf(ErrInvalidSpecies, "species %s has no thermo model", name)
	}
	return &Species{
		name:        name,
		composition: append(Composition(nil), composition...),
		thermo:      thermo,
		transport:   transport,
	}, nil
}

func (s *Species) Name() string {
	return s.name
}

// Composition 返回组成的副本，元素指针仍是共享的
func (s *Species) Composition() Composition {
	return append(Composition(nil), s.composition...)
}

// Thermo 热力学模型本身不可变，可以直接共享
func (s *Species) Thermo() *ThermoModel {
	return s.thermo
}

func (s *Species) Transport() Transport {
	return s.transport
}

// Formula 化学式，如 CO2
func (s *Species) Formula() string {
	return s.composition.Formula()
}

func (s *Species) String() string {
	return fmt.Sprintf("\nSpecies ................. %s"+
		"\n- thermo.model .......... %s"+
		"\n- transport.model ....... %s"+
		"\n- transport.geometry .... %s",
		s.name, s.thermo.Kind(), s.transport.Phase, s.transport.Geometry)
}

// MolarMass 摩尔质量 [g/mol]
func (s *Species) MolarMass() float64 {
	return s.composition.MolarMass()
}

// SpecificHeatMole 摩尔比热 [J/(mol.K)]，越界错误带上物种名和温度
func (s *Species) SpecificHeatMole(temp float64) (float64, error) {
	val, err := s.thermo.SpecificHeatMole(temp)
	if err != nil {
		return 0, errors.WithMessagef(err, "specific heat of %s at %g K", s.name, temp)
	}
	return val, nil
}

// EnthalpyMole 摩尔焓 [J/mol]
func (s *Species) EnthalpyMole(temp float64) (float64, error) {
	val, err := s.thermo.EnthalpyMole(temp)
	if err != nil {
		return 0, errors.WithMessagef(err, "enthalpy of %s at %g K", s.name, temp)
	}
	return val, nil
}

// EntropyMole 摩尔熵 [J/(mol.K)]
func (s *Species) EntropyMole(temp float64) (float64, error) {
	val, err := s.thermo.EntropyMole(temp)
	if err != nil {
		return 0, errors.WithMessagef(err, "entropy of %s at %g K", s.name, temp)
	}
	return val, nil
}

// MustSpecificHeatMole 诊断工具用，出错直接 panic
func (s *Species) MustSpecificHeatMole(temp float64) float64 {
	val, err := s.thermo.SpecificHeatMole(temp)
	if err != nil {
		panic(fmt.Sprintf("Specific heat of %s error at %g K: %v", s.name, temp, err))
	}
	return val
}

// MustEnthalpyMole 诊断工具用，出错直接 panic
func (s *Species) MustEnthalpyMole(temp float64) float64 {
	val, err := s.thermo.EnthalpyMole(temp)
	if err != nil {
		panic(fmt.Sprintf("Enthalpy of %s error at %g K: %v", s.name, temp, err))
	}
	return val
}
