package api

import (
	"context"
	"net"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/covid19-estimator-api/estimator"
	"github.com/bitmark-inc/covid19-estimator-api/logmodule"
	"github.com/bitmark-inc/covid19-estimator-api/metrics"
	"github.com/bitmark-inc/covid19-estimator-api/utils"
)

const welcomeMessage = "Welcome to this awesome API"

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Config is everything the server needs from the process configuration
type Config struct {
	Version     string
	CORSOrigins []string
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	config    Config
	estimator estimator.Estimator

	// metrics
	scope          tally.Scope
	metricsHandler http.Handler
}

// NewServer new instance of server. A nil scope disables metrics and a nil
// metricsHandler leaves /metrics unrouted.
func NewServer(
	config Config,
	est estimator.Estimator,
	scope tally.Scope,
	metricsHandler http.Handler) *Server {
	if scope == nil {
		scope = tally.NoopScope
	}

	s := &Server{
		config:         config,
		estimator:      est,
		scope:          scope,
		metricsHandler: metricsHandler,
	}
	s.server = &http.Server{
		Handler:           s.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Run listens on addr and serves until the server is shut down
func (s *Server) Run(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve serves on ln. The listener is closed when Serve returns.
func (s *Server) Serve(ln net.Listener) error {
	log.WithField("addr", ln.Addr().String()).Info("server listening")
	return s.server.Serve(ln)
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(logmodule.RequestID())
	r.Use(metrics.Middleware(s.scope))
	r.Use(logmodule.Ginrus("HTTP"))
	r.Use(cors.New(s.corsConfig()))

	apiRoute := r.Group("/api")
	{
		apiRoute.GET("/home", s.home)
		apiRoute.POST("/v1/on-covid-19", s.estimate)
	}

	r.GET("/healthz", s.healthz)
	if s.metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(s.metricsHandler))
	}

	return r
}

func (s *Server) corsConfig() cors.Config {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept-Language", logmodule.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", logmodule.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if len(s.config.CORSOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = s.config.CORSOrigins
	}
	return config
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": s.config.Version,
	})
}

func (s *Server) home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": utils.Localize(c.GetHeader("Accept-Language"), "welcome", welcomeMessage),
	})
}

// abortWithError attaches errors to the context for the access log and
// answers with the localized error object
func abortWithError(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(code, localized(c, obj))
}
