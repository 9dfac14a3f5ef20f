package web

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AnanyaVY/code-reviewer/internal/cache"
	"github.com/AnanyaVY/code-reviewer/internal/config"
	"github.com/AnanyaVY/code-reviewer/internal/output"
	"github.com/AnanyaVY/code-reviewer/internal/review"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// runFunc runs one review; indirected so tests can stub the engine.
type runFunc func(ctx context.Context, req review.Request, cfg config.Config, log *zap.Logger) (*review.Result, error)

// Server is the browser UI. It owns the single-slot cache of the last
// result; the review engine itself stays stateless.
type Server struct {
	cfg    config.Config
	log    *zap.Logger
	slot   cache.Slot
	run    runFunc
	router *gin.Engine
}

// New builds a Server with its routes and templates registered.
func New(cfg config.Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{cfg: cfg, log: log, run: review.Run}

	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"severityLabel": output.ESLintSeverityLabel,
	}).ParseFS(templateFS, "templates/*.tmpl"))

	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(tmpl)
	router.GET("/", s.handleIndex)
	router.POST("/review", s.handleReview)
	router.GET("/report", s.handleReport)
	router.POST("/clear", s.handleClear)
	s.router = router

	return s
}

// Handler exposes the router for embedding and tests.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe blocks serving the UI on the configured address.
func (s *Server) ListenAndServe() error {
	s.log.Info("web UI listening", zap.String("addr", s.cfg.ListenAddr))
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// pageData is the template view model. Grouped views are precomputed so the
// template stays logic-free.
type pageData struct {
	Languages []review.Language
	Error     string
	Result    *review.Result
	Pylint    []output.PylintGroup
	ESLint    []output.ESLintFileGroup
}

func (s *Server) pageData(errMsg string) pageData {
	data := pageData{
		Languages: review.SupportedLanguages(),
		Error:     errMsg,
	}
	res, ok := s.slot.Load()
	if !ok {
		return data
	}
	data.Result = res
	if res.Static.Pylint != nil && res.Static.Pylint.Success {
		data.Pylint = output.GroupPylintByType(res.Static.Pylint)
	}
	if res.Static.ESLint != nil && res.Static.ESLint.Success {
		data.ESLint = output.GroupESLintByFile(res.Static.ESLint)
	}
	return data
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html.tmpl", s.pageData(c.Query("err")))
}

func (s *Server) handleReview(c *gin.Context) {
	code := c.PostForm("code")
	langInput := c.PostForm("language")

	req := review.Request{Code: code, Language: review.Language(langInput)}
	if lang, ok := review.ParseLanguage(langInput); ok {
		req.Language = lang
	}

	res, err := s.run(c.Request.Context(), req, s.cfg, s.log)
	if err != nil {
		// Validation failure: nothing ran, and the stale result is cleared
		// rather than left on screen.
		s.slot.Clear()
		s.log.Warn("review rejected", zap.Error(err))
		c.Redirect(http.StatusSeeOther, "/?err="+url.QueryEscape(err.Error()))
		return
	}

	s.slot.Store(res)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleReport(c *gin.Context) {
	res, ok := s.slot.Load()
	if !ok {
		c.String(http.StatusNotFound, "no review result available")
		return
	}

	var buf bytes.Buffer
	if err := (&output.TextWriter{}).Write(&buf, res); err != nil {
		c.String(http.StatusInternalServerError, "rendering report: %v", err)
		return
	}

	filename := fmt.Sprintf("code_review_report_%s.txt", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

func (s *Server) handleClear(c *gin.Context) {
	s.slot.Clear()
	c.Redirect(http.StatusSeeOther, "/")
}
