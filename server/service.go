package server

import (
	"math"
	"net/http"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"kilngas/advection"
	"kilngas/model"
	"kilngas/registry"
	"kilngas/sweep"
	"kilngas/thermo"
)

const (
	maxSweepPoints  = 100000
	maxTemperatures = 1000
	maxAdvectNx     = 10001
)

var ErrBadRequest = errors.New("bad request")

// Service WebSocket 与 HTTP 共用的查询逻辑
type Service struct {
	registry *registry.Registry
	executor *sweep.Executor
	// 扫描请求未指定点数时的默认值
	points int
}

func NewService(reg *registry.Registry, executor *sweep.Executor, points int) *Service {
	if points < 1 {
		points = 50
	}
	return &Service{registry: reg, executor: executor, points: points}
}

func speciesInfo(s *thermo.Species) model.SpeciesInfo {
	return model.SpeciesInfo{
		Name:        s.Name(),
		Formula:     s.Formula(),
		MolarMass:   s.MolarMass(),
		Model:       s.Thermo().Kind().String(),
		Breakpoints: s.Thermo().Breakpoints(),
		Geometry:    s.Transport().Geometry.String(),
	}
}

func (s *Service) SpeciesList() []model.SpeciesInfo {
	return lo.Map(s.registry.All(), func(sp *thermo.Species, _ int) model.SpeciesInfo {
		return speciesInfo(sp)
	})
}

func (s *Service) Species(name string) (model.SpeciesInfo, error) {
	sp, err := s.registry.Get(name)
	if err != nil {
		return model.SpeciesInfo{}, err
	}
	return speciesInfo(sp), nil
}

// Properties 逐点计算，任一温度越界则整体失败
func (s *Service) Properties(q model.PropertyQuery) (*model.PropertyReply, error) {
	sp, err := s.registry.Get(q.Species)
	if err != nil {
		return nil, err
	}
	if len(q.Temperatures) == 0 {
		return nil, errors.Wrap(ErrBadRequest, "no temperature given")
	}
	if len(q.Temperatures) > maxTemperatures {
		return nil, errors.Wrapf(ErrBadRequest, "at most %d temperatures per query", maxTemperatures)
	}
	points := make([]sweep.Point, 0, len(q.Temperatures))
	for _, temp := range q.Temperatures {
		p, err := sweep.Evaluate(sp, temp)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return &model.PropertyReply{Species: sp.Name(), Points: points}, nil
}

func (s *Service) Sweep(q model.SweepQuery) (*model.SweepReply, error) {
	sp, err := s.registry.Get(q.Species)
	if err != nil {
		return nil, err
	}
	n := q.Points
	if n == 0 {
		n = s.points
	}
	if n < 1 || n > maxSweepPoints {
		return nil, errors.Wrapf(ErrBadRequest, "points must be in [1, %d], got %d", maxSweepPoints, n)
	}
	tmin, tmax := sp.Thermo().Bounds()
	if q.Tmin != nil {
		tmin = *q.Tmin
	}
	if q.Tmax != nil {
		tmax = *q.Tmax
	}
	if math.IsNaN(tmin) || math.IsNaN(tmax) || tmin > tmax {
		return nil, errors.Wrapf(ErrBadRequest, "invalid temperature interval [%g, %g]", tmin, tmax)
	}
	points, err := s.executor.Scan(sp, tmin, tmax, n)
	if err != nil {
		return nil, err
	}
	return &model.SweepReply{Species: sp.Name(), Points: points}, nil
}

// Advect 未给出 tend 时使用固定步长算例，否则按 CFL 推算步数
func (s *Service) Advect(q model.AdvectQuery) (*model.AdvectReply, error) {
	if q.Nx < 2 || q.Nx > maxAdvectNx {
		return nil, errors.Wrapf(ErrBadRequest, "nx must be in [2, %d], got %d", maxAdvectNx, q.Nx)
	}
	p := advection.DefaultParams(q.Nx)
	if q.Tend > 0 {
		sigma := q.Sigma
		if sigma == 0 {
			sigma = 0.5
		}
		var err error
		if p, err = advection.NewCFL(p.Length, p.Speed, q.Nx, q.Tend, sigma); err != nil {
			return nil, err
		}
	}
	return advection.Simulate(p)
}

// 错误到 HTTP 状态码的映射
func errorStatus(err error) int {
	switch {
	case errors.Is(err, thermo.ErrOutOfRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, registry.ErrSpeciesNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest), errors.Is(err, advection.ErrInvalidParams):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
