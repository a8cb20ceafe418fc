package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ufal/maskit-web/pkg/render"
)

// renderHandler handles POST /api/render. It renders content the caller
// already holds; nothing is sent to the remote service.
func (s *Server) renderHandler(c *gin.Context) {
	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	format := render.ParseFormat(req.Format)
	if format == "" {
		format = render.FormatText
	}
	result := render.ProcessedResult{Content: req.Content, Format: format}
	opts := applyToggles(s.cfg.Display, req.ShowOriginals, req.ShowHighlighting)

	var out string
	if req.Display {
		out = render.RenderForDisplay(result, opts)
	} else {
		out = render.Render(result, opts)
	}
	s.countRender(format, opts)

	c.JSON(http.StatusOK, RenderResponse{Output: out})
}

func (s *Server) countRender(format render.Format, opts render.DisplayOptions) {
	if s.metrics != nil {
		s.metrics.IncrementRenders(string(format), render.Variant(opts))
	}
}
