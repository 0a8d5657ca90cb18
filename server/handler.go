package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kilngas/model"
)

// GET /api/species
func (s *Server) listSpecies(c *gin.Context) {
	setResp(c, http.StatusOK, s.svc.SpeciesList())
}

// GET /api/species/:name
func (s *Server) getSpecies(c *gin.Context) {
	info, err := s.svc.Species(c.Param("name"))
	if err != nil {
		setErrResp(c, err)
		return
	}
	setResp(c, http.StatusOK, info)
}

// GET /api/species/:name/properties?t=500&t=1000
func (s *Server) getProperties(c *gin.Context) {
	raw := c.QueryArray("t")
	temps := make([]float64, 0, len(raw))
	for _, v := range raw {
		temp, err := strconv.ParseFloat(v, 64)
		if err != nil {
			setBadRequest(c, "invalid temperature "+strconv.Quote(v))
			return
		}
		temps = append(temps, temp)
	}
	reply, err := s.svc.Properties(model.PropertyQuery{Species: c.Param("name"), Temperatures: temps})
	if err != nil {
		setErrResp(c, err)
		return
	}
	setResp(c, http.StatusOK, reply)
}

// GET /api/species/:name/sweep?points=50&tmin=300&tmax=2000
func (s *Server) getSweep(c *gin.Context) {
	q := model.SweepQuery{Species: c.Param("name")}
	if v, ok := c.GetQuery("points"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			setBadRequest(c, "invalid points "+strconv.Quote(v))
			return
		}
		q.Points = n
	}
	bounds := []struct {
		key string
		dst **float64
	}{{"tmin", &q.Tmin}, {"tmax", &q.Tmax}}
	for _, b := range bounds {
		if v, ok := c.GetQuery(b.key); ok {
			temp, err := strconv.ParseFloat(v, 64)
			if err != nil {
				setBadRequest(c, "invalid "+b.key+" "+strconv.Quote(v))
				return
			}
			*b.dst = &temp
		}
	}
	reply, err := s.svc.Sweep(q)
	if err != nil {
		setErrResp(c, err)
		return
	}
	setResp(c, http.StatusOK, reply)
}

// GET /api/advect?nx=41&tend=0.5&sigma=0.5
func (s *Server) getAdvect(c *gin.Context) {
	var q model.AdvectQuery
	var err error
	if q.Nx, err = strconv.Atoi(c.DefaultQuery("nx", "41")); err != nil {
		setBadRequest(c, "invalid nx")
		return
	}
	if v, ok := c.GetQuery("tend"); ok {
		if q.Tend, err = strconv.ParseFloat(v, 64); err != nil {
			setBadRequest(c, "invalid tend")
			return
		}
	}
	if v, ok := c.GetQuery("sigma"); ok {
		if q.Sigma, err = strconv.ParseFloat(v, 64); err != nil {
			setBadRequest(c, "invalid sigma")
			return
		}
	}
	reply, err := s.svc.Advect(q)
	if err != nil {
		setErrResp(c, err)
		return
	}
	setResp(c, http.StatusOK, reply)
}
