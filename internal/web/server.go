// Package web serves the classifier as a server-rendered browser front-end.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"github.com/Veraticus/template-classifier/internal/common"
	"github.com/Veraticus/template-classifier/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// ProxyPrefix is the path the upstream service is mounted under.
const ProxyPrefix = "/api"

// Config defines server dependencies.
type Config struct {
	Classifier     service.TemplateClassifier
	Logger         *slog.Logger
	Upstream       string
	ServiceURL     string
	AllowedOrigins []string
	RewriteEnabled bool
}

// Server wires HTTP handlers to the classification service.
type Server struct {
	classifier     service.TemplateClassifier
	logger         *slog.Logger
	proxy          *httputil.ReverseProxy
	templates      *template.Template
	serviceURL     string
	allowedOrigins []string
	rewriteEnabled bool
}

// NewServer validates cfg and builds a server.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Classifier == nil {
		return nil, fmt.Errorf("%w: classifier is required", common.ErrInvalidConfig)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		classifier:     cfg.Classifier,
		logger:         logger,
		templates:      tmpl,
		serviceURL:     cfg.ServiceURL,
		allowedOrigins: cfg.AllowedOrigins,
		rewriteEnabled: cfg.RewriteEnabled,
	}

	if cfg.Upstream != "" {
		upstream, err := url.Parse(cfg.Upstream)
		if err != nil || upstream.Scheme == "" || upstream.Host == "" {
			return nil, fmt.Errorf("%w: upstream %q must be an absolute URL", common.ErrInvalidConfig, cfg.Upstream)
		}
		s.proxy = newProxy(upstream, logger)
	}

	return s, nil
}

// Router configures gin routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))
	r.SetHTMLTemplate(s.templates)

	r.GET("/", s.handleIndex)
	r.POST("/classify", s.handleClassify)
	if s.rewriteEnabled {
		r.POST("/rewrite", s.handleRewrite)
	}
	r.GET("/healthz", s.handleHealth)

	if s.proxy != nil {
		api := r.Group(ProxyPrefix)
		api.Use(cors.New(s.corsConfig()))
		api.Any("/*path", s.handleProxy)
	}

	return r
}

func (s *Server) corsConfig() cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowCredentials = true
	if len(s.allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = s.allowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	return corsCfg
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleProxy(c *gin.Context) {
	s.proxy.ServeHTTP(c.Writer, c.Request)
}

func newProxy(upstream *url.URL, logger *slog.Logger) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.Out.URL.Path = strings.TrimPrefix(r.In.URL.Path, ProxyPrefix)
			r.Out.URL.RawPath = ""
			r.SetURL(upstream)
			r.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Error("Proxy request failed",
				"path", r.URL.Path,
				"upstream", upstream.String(),
				"error", err)
			w.WriteHeader(http.StatusBadGateway)
		},
	}
}

// requestLogger logs one line per request through slog.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
