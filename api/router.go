package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// api routes
	PingURL          = "/ping"
	ClassesExpandURL = "/classes/expand"
)

// Establishes HTTP router.
func (s *Service) setupRouter(server *http.Server) {
	router := gin.Default()

	router.Use(s.corsMiddleware())

	router.GET(PingURL, func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	router.POST(ClassesExpandURL, s.expandClasses)

	server.Handler = router
	s.router = router
}
