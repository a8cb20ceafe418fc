package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ufal/maskit-web/pkg/version"
)

const healthStatusHealthy = "healthy"

// healthHandler handles GET /health.
// Only the process itself is checked; the remote service is reported by
// /api/info so an outage there does not restart this server.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, &HealthResponse{
		Status:  healthStatusHealthy,
		Version: version.GitCommit,
		Checks: map[string]HealthCheck{
			"sessions": {
				Status:  healthStatusHealthy,
				Message: strconv.Itoa(s.sessions.Count()) + " active",
			},
		},
	})
}

// infoHandler handles GET /api/info.
func (s *Server) infoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.maskit.ServerInfo(c.Request.Context()))
}
