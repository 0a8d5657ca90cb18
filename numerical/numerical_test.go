package numerical

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func TestPow(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("Pow")

	for _, a := range []float64{0, 1, -1, 2.5} {
		chk.Float64(tst, io.Sf("Pow(%g, 0)", a), 1e-17, Pow(a, 0), 1)
	}
	chk.Float64(tst, "Pow(2, 3)", 1e-17, Pow(2, 3), 8)
	chk.Float64(tst, "Pow(2, -2)", 1e-17, Pow(2, -2), 0.25)
	chk.Float64(tst, "Pow(2, 1)", 1e-17, Pow(2, 1), 2)
	chk.Float64(tst, "Pow(-3, 3)", 1e-17, Pow(-3, 3), -27)
	chk.Float64(tst, "Pow(2, -4)", 1e-17, Pow(2, -4), 0.0625)

	// 超出快速路径的指数与 math.Pow 一致
	for _, n := range []int{-7, -5, 5, 6, 9} {
		chk.Float64(tst, io.Sf("Pow(1.3, %d)", n), 1e-15, Pow(1.3, n), math.Pow(1.3, float64(n)))
	}

	// 快速路径与 math.Pow 的偏差
	for n := -4; n <= 4; n++ {
		chk.Float64(tst, io.Sf("Pow(777.7, %d)", n), 1e-12*math.Abs(math.Pow(777.7, float64(n))), Pow(777.7, n), math.Pow(777.7, float64(n)))
	}
}

func TestPowZeroBaseNegativeExponent(tst *testing.T) {

	chk.PrintTitle("Pow zero base")

	for _, n := range []int{-1, -2, -3, -4, -5} {
		res := Pow(0, n)
		if !math.IsInf(res, 1) {
			tst.Errorf("Pow(0, %d) = %v, want +Inf", n, res)
		}
	}
}

func TestLinspace(tst *testing.T) {

	chk.PrintTitle("Linspace")

	chk.Array(tst, "Linspace(0, 2, 5)", 1e-17, Linspace(0.0, 2.0, 5), []float64{0.0, 0.5, 1.0, 1.5, 2.0})
	chk.Array(tst, "Linspace(5, 5, 3)", 1e-17, Linspace(5, 5, 3), []float64{5, 5, 5})
	chk.Array(tst, "Linspace(1, -1, 3)", 1e-17, Linspace(1, -1, 3), []float64{1, 0, -1})
	chk.Array(tst, "Linspace(3, 9, 1)", 1e-17, Linspace(3, 9, 1), []float64{3})

	if res := Linspace(0, 1, 0); len(res) != 0 {
		tst.Errorf("Linspace(0, 1, 0) has %d samples, want 0", len(res))
	}
	if res := Linspace(0, 1, -4); len(res) != 0 {
		tst.Errorf("Linspace(0, 1, -4) has %d samples, want 0", len(res))
	}
}

func TestLinspaceSweep(tst *testing.T) {

	chk.PrintTitle("Linspace sweep")

	// 与 gosl 的实现对照
	res := Linspace(200, 3500, 1000)
	chk.Array(tst, "Linspace vs utl.LinSpace", 1e-9, res, utl.LinSpace(200, 3500, 1000))
	chk.Float64(tst, "first", 1e-17, res[0], 200)
	chk.Float64(tst, "last", 1e-17, res[len(res)-1], 3500)
	if chk.Verbose {
		io.Pforan("res[:3] = %v\n", res[:3])
	}
}
