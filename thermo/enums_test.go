package thermo

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestKindStrings(tst *testing.T) {

	chk.PrintTitle("kind strings")

	chk.String(tst, NASA7.String(), "NASA7")
	chk.String(tst, NASA9.String(), "NASA9")
	chk.String(tst, GAS.String(), "GAS")
	chk.String(tst, ATOM.String(), "ATOM")
	chk.String(tst, LINEAR.String(), "LINEAR")
	chk.String(tst, ModelKind(42).String(), "UNKNOWN")
}

func TestParseKinds(tst *testing.T) {

	chk.PrintTitle("parse kinds")

	k, err := ParseModelKind(" nasa7 ")
	if err != nil || k != NASA7 {
		tst.Errorf("ParseModelKind(nasa7) = %v, %v", k, err)
	}
	if _, err = ParseModelKind("shomate"); err == nil {
		tst.Errorf("ParseModelKind(shomate) should fail")
	}
	p, err := ParsePhaseKind("gas")
	if err != nil || p != GAS {
		tst.Errorf("ParsePhaseKind(gas) = %v, %v", p, err)
	}
	g, err := ParseGeometryKind("Linear")
	if err != nil || g != LINEAR {
		tst.Errorf("ParseGeometryKind(Linear) = %v, %v", g, err)
	}
	if _, err = ParseGeometryKind("NONLINEAR"); err == nil {
		tst.Errorf("ParseGeometryKind(NONLINEAR) should fail")
	}
}
