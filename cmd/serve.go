package cmd

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"kilngas/server"
	"kilngas/sweep"
)

func newServeCmd(cfgPath *string) *cobra.Command {
	var addr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve start http api and websocket server.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, reg, err := setup(*cfgPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			gin.SetMode(cfg.Server.Mode)

			upgrader := websocket.Upgrader{
				ReadBufferSize:  1024,
				WriteBufferSize: 1024,
				CheckOrigin: func(r *http.Request) bool {
					return true
				},
			}
			svc := server.NewService(reg, sweep.New(cfg.Sweep.Workers), cfg.Sweep.Points)
			s := server.NewServer(cfg.Server.Addr, upgrader, svc)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			color.Green("Starting server at %s (species: %d)", cfg.Server.Addr, reg.Len())
			return s.Serve(ctx)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides [server] addr")
	return serveCmd
}
