package thermo

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/pkg/errors"
)

var (
	elemH = &Element{Name: "H", AtomicNumber: 1, Mass: 1.008, Entropy298: 65340.0}
	elemO = &Element{Name: "O", AtomicNumber: 8, Mass: 15.999, Entropy298: 102573.5}
)

func newH2Species(tst *testing.T) *Species {
	s, err := NewSpecies("H2", Composition{{Element: elemH, Count: 2}}, newH2Model(tst), Transport{
		Phase:                GAS,
		Geometry:             LINEAR,
		WellDepth:            38.0,
		Diameter:             2.92,
		Polarizability:       0.79,
		RotationalRelaxation: 280.0,
	})
	if err != nil {
		tst.Fatalf("NewSpecies: %v", err)
	}
	return s
}

// 断言函数 f 以指定信息 panic
func checkPanic(tst *testing.T, msg string, f func()) {
	defer func() {
		r := recover()
		if r == nil {
			tst.Errorf("expected panic %q", msg)
			return
		}
		if msg != "" && r != msg {
			tst.Errorf("panic = %v, want %q", r, msg)
		}
	}()
	f()
}

func TestCompositionValidate(tst *testing.T) {

	chk.PrintTitle("composition validation")

	if err := (Composition{{elemH, 2}, {elemO, 1}}).Validate(); err != nil {
		tst.Errorf("water composition: %v", err)
	}

	cases := map[string]Composition{
		"empty":          {},
		"nil element":    {{nil, 1}},
		"zero count":     {{elemH, 0}},
		"negative count": {{elemH, -2}},
		"duplicate":      {{elemH, 1}, {elemO, 1}, {elemH, 1}},
		// 同名不同实例也视为重复
		"duplicate name": {{elemH, 1}, {&Element{Name: "H", Mass: 1.008}, 1}},
	}
	for name, c := range cases {
		if err := c.Validate(); !errors.Is(err, ErrInvalidComposition) {
			tst.Errorf("%s: error = %v, want ErrInvalidComposition", name, err)
		}
	}
}

func TestMolarMassAndFormula(tst *testing.T) {

	chk.PrintTitle("molar mass and formula")

	water := Composition{{elemH, 2}, {elemO, 1}}
	chk.Float64(tst, "M(H2O)", 1e-9, water.MolarMass(), 18.015)
	chk.String(tst, water.Formula(), "H2O")
	chk.String(tst, Composition{{elemO, 1}}.Formula(), "O")
}

func TestNewSpeciesValidation(tst *testing.T) {

	chk.PrintTitle("NewSpecies validation")

	m := newH2Model(tst)
	if _, err := NewSpecies(" ", Composition{{elemH, 2}}, m, Transport{}); !errors.Is(err, ErrInvalidSpecies) {
		tst.Errorf("blank name: error = %v", err)
	}
	_, err := NewSpecies("H2", Composition{{elemH, 1}, {elemH, 1}}, m, Transport{})
	if !errors.Is(err, ErrInvalidComposition) || !strings.Contains(err.Error(), "H2") {
		tst.Errorf("duplicate element: error = %v", err)
	}
	if _, err = NewSpecies("H2", Composition{{elemH, 2}}, nil, Transport{}); !errors.Is(err, ErrInvalidSpecies) {
		tst.Errorf("nil model: error = %v", err)
	}
}

func TestSpeciesPropagatesOutOfRange(tst *testing.T) {

	chk.PrintTitle("species errors")

	s := newH2Species(tst)
	cp, err := s.SpecificHeatMole(500)
	if err != nil {
		tst.Fatalf("SpecificHeatMole: %v", err)
	}
	chk.Float64(tst, "cp(500)", 1e-6, cp, 29.297642492665666)

	_, err = s.SpecificHeatMole(5000)
	if !errors.Is(err, ErrOutOfRange) {
		tst.Fatalf("error = %v, want ErrOutOfRange", err)
	}
	if !strings.Contains(err.Error(), "H2") || !strings.Contains(err.Error(), "5000") {
		tst.Errorf("error %q should name species and temperature", err)
	}

	_, err = s.EnthalpyMole(100)
	var rangeErr *OutOfRangeError
	if !errors.As(err, &rangeErr) {
		tst.Fatalf("error %v is not *OutOfRangeError", err)
	}
	chk.Float64(tst, "Temperature", 1e-17, rangeErr.Temperature, 100)

	if _, err = s.EntropyMole(3600); !errors.Is(err, ErrOutOfRange) {
		tst.Errorf("EntropyMole(3600) error = %v", err)
	}
}

func TestSpeciesMustPanics(tst *testing.T) {

	chk.PrintTitle("Must helpers")

	s := newH2Species(tst)
	cp, _ := s.SpecificHeatMole(1000)
	h, _ := s.EnthalpyMole(1000)
	chk.Float64(tst, "MustSpecificHeatMole", 1e-17, s.MustSpecificHeatMole(1000), cp)
	chk.Float64(tst, "MustEnthalpyMole", 1e-17, s.MustEnthalpyMole(1000), h)
	checkPanic(tst, "Specific heat of H2 error at 4000 K: temperature 4000 K out of range [200, 3500] K", func() {
		s.MustSpecificHeatMole(4000)
	})
	checkPanic(tst, "", func() {
		s.MustEnthalpyMole(-1)
	})
}

func TestSpeciesString(tst *testing.T) {

	chk.PrintTitle("species string")

	out := newH2Species(tst).String()
	for _, want := range []string{"H2", "NASA7", "LINEAR"} {
		if !strings.Contains(out, want) {
			tst.Errorf("String() = %q, missing %q", out, want)
		}
	}
}

// 物种构造后只读：修改入参或访问器返回值都不影响物种
func TestSpeciesIsReadOnly(tst *testing.T) {

	chk.PrintTitle("read-only species")

	comp := Composition{{elemH, 2}}
	s, err := NewSpecies("H2", comp, newH2Model(tst), Transport{Geometry: LINEAR})
	if err != nil {
		tst.Fatalf("NewSpecies: %v", err)
	}

	comp[0].Count = 5
	got := s.Composition()
	got[0].Count = 7
	got = append(got, Component{elemO, 1})
	tr := s.Transport()
	tr.Geometry = ATOM
	chk.Int(tst, "modified copy", len(got), 2)
	chk.String(tst, tr.Geometry.String(), "ATOM")

	chk.Int(tst, "count", s.Composition()[0].Count, 2)
	chk.Int(tst, "components", len(s.Composition()), 1)
	chk.Float64(tst, "molar mass", 1e-12, s.MolarMass(), 2.016)
	chk.String(tst, s.Formula(), "H2")
	chk.String(tst, s.Transport().Geometry.String(), "LINEAR")
	chk.String(tst, s.Name(), "H2")
	// 元素本身是共享的
	if s.Composition()[0].Element != elemH {
		tst.Errorf("element should be shared by pointer")
	}
}
