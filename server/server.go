package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"kilngas/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	svc      *Service
	engine   *gin.Engine
}

func NewServer(addr string, upgrader websocket.Upgrader, svc *Service) *Server {
	s := &Server{
		addr:     addr,
		upgrader: upgrader,
		svc:      svc,
	}
	s.engine = s.newRouter()
	return s
}

func (s *Server) newRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), Logger())

	router.GET("/ws", func(c *gin.Context) {
		s.serveWs(c.Writer, c.Request)
	})

	api := router.Group("/api")
	api.GET("/species", s.listSpecies)
	api.GET("/species/:name", s.getSpecies)
	api.GET("/species/:name/properties", s.getProperties)
	api.GET("/species/:name/sweep", s.getSweep)
	api.GET("/advect", s.getAdvect)
	return router
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	hub := NewHub(s.svc)
	hub.conn = conn
	defer hub.close()
	go hub.handleRequest()
	go hub.handleResponse()

	for {
		var msg model.Msg
		if err = conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("websocket read failed")
			}
			return
		}
		hub.msg <- msg
	}
}

// Serve 阻塞直到 ctx 结束或监听失败
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}
	errChan := make(chan error, 1)
	go func() {
		log.WithField("addr", s.addr).Info("server started")
		errChan <- srv.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return errors.Wrap(err, "ListenAndServe")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
