package thermo

import (
	"math"

	"kilngas/numerical"
)

// NASA7 每个温度区间的系数个数
const NASA7Coefficients = 7

// DefaultGasConstant 通用气体常数 [J/(mol.K)]
const DefaultGasConstant = 8.31446

// Constants 物性计算用到的物理常数，构造模型时显式传入
type Constants struct {
	GasConstant float64
}

func DefaultConstants() Constants {
	return Constants{GasConstant: DefaultGasConstant}
}

// ThermoModel 分段多项式热力学模型
// 区间 k 覆盖 (breakpoints[k], breakpoints[k+1]]，T == breakpoints[0] 归入区间 0
type ThermoModel struct {
	kind        ModelKind
	breakpoints []float64
	data        [][]float64
	consts      Constants
}

// NewThermoModel 校验并构造模型，入参会被复制，构造后不可变
func NewThermoModel(kind ModelKind, breakpoints []float64, data [][]float64, consts Constants) (*ThermoModel, error) {
	if kind == NASA9 {
		return nil, ErrKindNotImplemented
	}
	if kind != NASA7 {
		return nil, newModelError("unknown model kind %d", int(kind))
	}
	if !(consts.GasConstant > 0) || math.IsInf(consts.GasConstant, 0) {
		return nil, newModelError("gas constant %g", consts.GasConstant)
	}
	if len(breakpoints) < 2 {
		return nil, newModelError("need at least 2 breakpoints, got %d", len(breakpoints))
	}
	for i, t := range breakpoints {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, newModelError("breakpoint %d is %g", i, t)
		}
		if i > 0 && !(breakpoints[i-1] < t) {
			return nil, newModelError("breakpoints not strictly increasing at %d", i)
		}
	}
	if len(data) != len(breakpoints)-1 {
		return nil, newModelError("%d coefficient rows for %d ranges", len(data), len(breakpoints)-1)
	}

	m := &ThermoModel{
		kind:        kind,
		breakpoints: append([]float64(nil), breakpoints...),
		data:        make([][]float64, len(data)),
		consts:      consts,
	}
	for k, row := range data {
		if len(row) != NASA7Coefficients {
			return nil, newModelError("row %d has %d coefficients, want %d", k, len(row), NASA7Coefficients)
		}
		for j, a := range row {
			if math.IsNaN(a) || math.IsInf(a, 0) {
				return nil, newModelError("row %d coefficient %d is %g", k, j, a)
			}
		}
		m.data[k] = append([]float64(nil), row...)
	}
	return m, nil
}

func (o *ThermoModel) Kind() ModelKind {
	return o.kind
}

// Breakpoints 返回温度断点的副本
func (o *ThermoModel) Breakpoints() []float64 {
	return append([]float64(nil), o.breakpoints...)
}

// Coefficients 返回第 k 个区间系数的副本
func (o *ThermoModel) Coefficients(k int) []float64 {
	return append([]float64(nil), o.data[k]...)
}

func (o *ThermoModel) Ranges() int {
	return len(o.data)
}

// Bounds 模型的有效温度范围
func (o *ThermoModel) Bounds() (min, max float64) {
	return o.breakpoints[0], o.breakpoints[len(o.breakpoints)-1]
}

func (o *ThermoModel) Constants() Constants {
	return o.consts
}

// SelectRange 选取温度所在区间，不做外推
func (o *ThermoModel) SelectRange(temp float64) (int, error) {
	tmin, tmax := o.Bounds()
	// NaN 的比较均为 false，这里一并判为越界
	if !(temp >= tmin && temp <= tmax) {
		return -1, &OutOfRangeError{Temperature: temp, Min: tmin, Max: tmax}
	}
	// 下端点单独处理，否则严格下界扫描会漏掉它
	if temp == tmin {
		return 0, nil
	}
	for k := 0; k < len(o.data); k++ {
		if o.breakpoints[k] < temp && temp <= o.breakpoints[k+1] {
			return k, nil
		}
	}
	return -1, &OutOfRangeError{Temperature: temp, Min: tmin, Max: tmax}
}

func (o *ThermoModel) selectPolynomial(temp float64) ([]float64, error) {
	if o.kind != NASA7 {
		return nil, ErrKindNotImplemented
	}
	k, err := o.SelectRange(temp)
	if err != nil {
		return nil, err
	}
	return o.data[k], nil
}

// SpecificHeatMole 摩尔定压比热 [J/(mol.K)]
// cp/R = a0 + a1 T + a2 T^2 + a3 T^3 + a4 T^4
func (o *ThermoModel) SpecificHeatMole(temp float64) (float64, error) {
	a, err := o.selectPolynomial(temp)
	if err != nil {
		return 0, err
	}
	val := a[0] +
		a[1]*temp +
		a[2]*numerical.Pow(temp, 2) +
		a[3]*numerical.Pow(temp, 3) +
		a[4]*numerical.Pow(temp, 4)
	return o.consts.GasConstant * val, nil
}

// EnthalpyMole 摩尔焓 [J/mol]
// h/(RT) = a0 + a1/2 T + a2/3 T^2 + a3/4 T^3 + a4/5 T^4 + a5/T
func (o *ThermoModel) EnthalpyMole(temp float64) (float64, error) {
	a, err := o.selectPolynomial(temp)
	if err != nil {
		return 0, err
	}
	if temp == 0 {
		return 0, ErrZeroTemperature
	}
	val := (a[0] / 1.0) +
		(a[1]/2.0)*temp +
		(a[2]/3.0)*numerical.Pow(temp, 2) +
		(a[3]/4.0)*numerical.Pow(temp, 3) +
		(a[4]/5.0)*numerical.Pow(temp, 4) +
		(a[5] / temp)
	return o.consts.GasConstant * temp * val, nil
}

// EntropyMole 标准摩尔熵 [J/(mol.K)]
// s/R = a0 ln(T) + a1 T + a2/2 T^2 + a3/3 T^3 + a4/4 T^4 + a6
func (o *ThermoModel) EntropyMole(temp float64) (float64, error) {
	a, err := o.selectPolynomial(temp)
	if err != nil {
		return 0, err
	}
	if temp <= 0 {
		return 0, ErrZeroTemperature
	}
	val := a[0]*math.Log(temp) +
		a[1]*temp +
		(a[2]/2.0)*numerical.Pow(temp, 2) +
		(a[3]/3.0)*numerical.Pow(temp, 3) +
		(a[4]/4.0)*numerical.Pow(temp, 4) +
		a[6]
	return o.consts.GasConstant * val, nil
}
