package advection

import (
	"math"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"kilngas/numerical"
)

var ErrInvalidParams = errors.New("invalid advection parameters")

// Params 一维线性对流参数
type Params struct {
	Length float64 `json:"length"` // 区域长度 [m]
	Speed  float64 `json:"speed"`  // 波速 [m/s]
	Nx     int     `json:"nx"`     // 网格点数
	Nt     int     `json:"nt"`     // 时间步数
	Dt     float64 `json:"dt"`     // 时间步长 [s]
}

// DefaultParams 固定步长的算例：L = 2, c = 1, nt = 20, dt = 0.025
func DefaultParams(nx int) Params {
	return Params{Length: 2.0, Speed: 1.0, Nx: nx, Nt: 20, Dt: 0.025}
}

// NewCFL 按 CFL 数 sigma 推算步数，保证总时长为 tend
func NewCFL(length, speed float64, nx int, tend, sigma float64) (Params, error) {
	if nx < 2 {
		return Params{}, errors.Wrapf(ErrInvalidParams, "nx = %d", nx)
	}
	if !(tend > 0) || !(sigma > 0) {
		return Params{}, errors.Wrapf(ErrInvalidParams, "tend = %g, sigma = %g", tend, sigma)
	}
	dx := length / float64(nx-1)
	nt := int(tend / (sigma * dx))
	if nt < 1 {
		nt = 1
	}
	return Params{
		Length: length,
		Speed:  speed,
		Nx:     nx,
		Nt:     nt,
		Dt:     tend / float64(nt),
	}, nil
}

func (p Params) Dx() float64 {
	return p.Length / float64(p.Nx-1)
}

// Courant c·dt/dx
func (p Params) Courant() float64 {
	return p.Speed * p.Dt / p.Dx()
}

func (p Params) validate() error {
	if p.Nx < 2 {
		return errors.Wrapf(ErrInvalidParams, "nx = %d", p.Nx)
	}
	if p.Nt < 0 {
		return errors.Wrapf(ErrInvalidParams, "nt = %d", p.Nt)
	}
	if !(p.Length > 0) || math.IsInf(p.Length, 0) {
		return errors.Wrapf(ErrInvalidParams, "length = %g", p.Length)
	}
	if !(p.Dt > 0) || math.IsInf(p.Dt, 0) {
		return errors.Wrapf(ErrInvalidParams, "dt = %g", p.Dt)
	}
	// 迎风格式取左侧差分，只适用于 c >= 0
	if !(p.Speed >= 0) || math.IsInf(p.Speed, 0) {
		return errors.Wrapf(ErrInvalidParams, "speed = %g", p.Speed)
	}
	return nil
}

type Result struct {
	Params  Params    `json:"params"`
	X       []float64 `json:"x"`
	Initial []float64 `json:"initial"`
	Final   []float64 `json:"final"`
}

// Simulate 迎风格式推进方波
func Simulate(p Params) (*Result, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	alpha := p.Courant()
	if alpha > 1 {
		log.WithFields(log.Fields{"nx": p.Nx, "courant": alpha}).Warn("courant number above 1, upwind scheme is unstable")
	}

	x := numerical.Linspace(0, p.Length, p.Nx)
	u := HatProfile(p.Nx)
	initial := make([]float64, len(u))
	copy(initial, u)

	un := make([]float64, len(u))
	for n := 0; n < p.Nt; n++ {
		copy(un, u)
		for i := 1; i < p.Nx; i++ {
			u[i] = un[i] - alpha*(un[i]-un[i-1])
		}
	}

	return &Result{Params: p, X: x, Initial: initial, Final: u}, nil
}

// HatProfile 初始方波：[nx/4, nx/2] 上为 2，其余为 1
func HatProfile(nx int) []float64 {
	u := make([]float64, nx)
	for i := range u {
		u[i] = 1.0
	}
	for k := nx / 4; k <= nx/2 && k < nx; k++ {
		u[k] = 2.0
	}
	return u
}
