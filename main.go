package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/covid19-estimator-api/api"
	"github.com/bitmark-inc/covid19-estimator-api/estimator"
	"github.com/bitmark-inc/covid19-estimator-api/metrics"
	"github.com/bitmark-inc/covid19-estimator-api/utils"
)

var (
	server  *api.Server
	logFile *os.File
	closers []io.Closer
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)
	if file := viper.GetString("log.file"); file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.WithError(err).Error("cannot open log file, logging to stdout only")
		} else {
			logFile = f
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	viper.SetDefault("server.port", 2500)
	viper.SetDefault("server.version", "dev")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("i18n.dir", "./i18n")
	viper.SetDefault("metrics.prefix", "covid19_estimator")

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("estimator")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// PORT is honored as well, after ESTIMATOR_SERVER_PORT
	_ = viper.BindEnv("server.port", "PORT")
}

func shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if server != nil {
		log.Info("Shutdown estimator api server")
		if err := server.Shutdown(ctx); err != nil {
			log.Error("Server Shutdown:", err)
		}
	}

	for _, c := range closers {
		if err := c.Close(); err != nil {
			log.Error(err)
		}
	}

	sentry.Flush(2 * time.Second)

	if logFile != nil {
		_ = logFile.Close()
	}
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	if err := utils.InitI18NBundle(viper.GetString("i18n.dir")); err != nil {
		log.WithField("prefix", "init").WithError(err).Warn("No i18n bundle, messages fall back to English")
	} else {
		log.WithField("prefix", "init").Info("Initialized i18n bundle")
	}

	scope, scopeCloser, metricsHandler := metrics.NewPrometheusScope(viper.GetString("metrics.prefix"))
	closers = append(closers, scopeCloser)
	log.WithField("prefix", "init").Info("Initialized metrics")

	// Init http server
	server = api.NewServer(
		api.Config{
			Version:     viper.GetString("server.version"),
			CORSOrigins: viper.GetStringSlice("server.cors_origins"),
		},
		estimator.New(),
		scope,
		metricsHandler)
	log.WithField("prefix", "init").Info("Initialized http server")

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		errc <- server.Run(":" + viper.GetString("server.port"))
	}()

	select {
	case <-c:
		log.Info("Server is preparing to shutdown")
		shutdown()
	case err := <-errc:
		if err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Server stopped")
			shutdown()
			os.Exit(1)
		}
		shutdown()
	}
}
