package api

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ufal/maskit-web/pkg/maskit"
	"github.com/ufal/maskit-web/pkg/render"
	"github.com/ufal/maskit-web/pkg/session"
)

// createSessionHandler handles POST /api/sessions.
func (s *Server) createSessionHandler(c *gin.Context) {
	sess := s.sessions.Create()
	slog.Info("Session created", "session_id", sess.ID)
	c.JSON(http.StatusCreated, sess.Clone())
}

// getSessionHandler handles GET /api/sessions/:id.
func (s *Server) getSessionHandler(c *gin.Context) {
	sess, err := s.sessions.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Clone())
}

// deleteSessionHandler handles DELETE /api/sessions/:id.
func (s *Server) deleteSessionHandler(c *gin.Context) {
	if err := s.sessions.Delete(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// submitHandler handles POST /api/sessions/:id/submit.
// A newer submission to the same session cancels this one; its late answer
// is then discarded.
func (s *Server) submitHandler(c *gin.Context) {
	sess, err := s.sessions.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	output := render.ParseFormat(req.Output)
	if output == "" {
		output = render.FormatHTML
	}
	processReq := maskit.ProcessRequest{
		Text:      req.Text,
		Input:     maskit.InputFormat(req.Input),
		Output:    output,
		Randomize: req.Randomize,
		Classes:   req.Classes,
	}
	if err := processReq.WithDefaults().Validate(); err != nil {
		abortWithError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.Server.SubmitTimeout)
	defer cancel()
	gen := sess.BeginSubmission(cancel)

	logger := slog.With("session_id", sess.ID, "generation", gen)
	logger.Info("Submitting text", "detect", req.Detect, "output", output)

	var resp *maskit.ProcessResponse
	if req.Detect {
		resp, err = s.maskit.Detect(ctx, processReq)
	} else {
		resp, err = s.maskit.Process(ctx, processReq)
	}
	if err != nil {
		if failErr := sess.FailSubmission(gen, err); failErr != nil {
			err = failErr
		}
		logger.Warn("Submission failed", "error", err)
		abortWithError(c, err)
		return
	}

	if err := sess.CompleteSubmission(gen, resp.ProcessedResult(), resp.Stats); err != nil {
		logger.Info("Discarding stale response")
		abortWithError(c, err)
		return
	}

	out, err := s.sessionOutput(sess, true)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, SubmitResponse{OutputResponse: out, Stats: resp.Stats})
}

// optionsHandler handles PUT /api/sessions/:id/options. Toggles may be set
// before anything was processed; the output is then empty.
func (s *Server) optionsHandler(c *gin.Context) {
	sess, err := s.sessions.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req OptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	sess.SetOptions(applyToggles(sess.Clone().Options, req.ShowOriginals, req.ShowHighlighting))

	out, err := s.sessionOutput(sess, true)
	if errors.Is(err, session.ErrNoResult) {
		c.JSON(http.StatusOK, OutputResponse{SessionID: sess.ID, Options: sess.Clone().Options})
		return
	}
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// outputHandler handles GET /api/sessions/:id/output[?display=true].
func (s *Server) outputHandler(c *gin.Context) {
	sess, err := s.sessions.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	display, _ := strconv.ParseBool(c.DefaultQuery("display", "false"))
	out, err := s.sessionOutput(sess, display)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// downloadHandler handles GET /api/sessions/:id/download.
func (s *Server) downloadHandler(c *gin.Context) {
	s.serveDownload(c, (*session.Session).Download)
}

// statsDownloadHandler handles GET /api/sessions/:id/stats/download.
func (s *Server) statsDownloadHandler(c *gin.Context) {
	s.serveDownload(c, (*session.Session).StatsDownload)
}

func (s *Server) serveDownload(c *gin.Context, get func(*session.Session) (*session.Download, error)) {
	sess, err := s.sessions.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	dl, err := get(sess)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": dl.FileName}))
	c.Data(http.StatusOK, dl.ContentType, dl.Data)
}

func (s *Server) sessionOutput(sess *session.Session, display bool) (OutputResponse, error) {
	snapshot := sess.Clone()
	text, err := snapshot.Output(display)
	if err != nil {
		return OutputResponse{}, err
	}
	s.countRender(snapshot.Result.Format, snapshot.Options)
	return OutputResponse{
		SessionID: snapshot.ID,
		Output:    text,
		Format:    snapshot.Result.Format,
		Options:   snapshot.Options,
	}, nil
}
