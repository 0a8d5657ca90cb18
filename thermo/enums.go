package thermo

import (
	"strings"

	"github.com/pkg/errors"
)

// 热力学模型类型
type ModelKind int

const (
	NASA7 ModelKind = iota
	NASA9           // 仅作为类型占位，未实现数值形式
)

// 输运物性相态
type PhaseKind int

const (
	GAS PhaseKind = iota
)

// 分子几何构型（非线性多原子分子暂不区分）
type GeometryKind int

const (
	ATOM GeometryKind = iota
	LINEAR
)

func (k ModelKind) String() string {
	switch k {
	case NASA7:
		return "NASA7"
	case NASA9:
		return "NASA9"
	default:
		return "UNKNOWN"
	}
}

func (k PhaseKind) String() string {
	switch k {
	case GAS:
		return "GAS"
	default:
		return "UNKNOWN"
	}
}

func (k GeometryKind) String() string {
	switch k {
	case ATOM:
		return "ATOM"
	case LINEAR:
		return "LINEAR"
	default:
		return "UNKNOWN"
	}
}

func ParseModelKind(s string) (ModelKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NASA7":
		return NASA7, nil
	case "NASA9":
		return NASA9, nil
	}
	return 0, errors.Errorf("unknown thermo model kind %q", s)
}

func ParsePhaseKind(s string) (PhaseKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "GAS":
		return GAS, nil
	}
	return 0, errors.Errorf("unknown transport phase kind %q", s)
}

func ParseGeometryKind(s string) (GeometryKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ATOM":
		return ATOM, nil
	case "LINEAR":
		return LINEAR, nil
	}
	return 0, errors.Errorf("unknown transport geometry kind %q", s)
}
