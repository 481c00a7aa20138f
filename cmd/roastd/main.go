package main

import (
	"context"
	"fmt"
	"io"
	netHttp "net/http"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/ghroast/internal/adapter/gemini"
	"github.com/m-zajac/ghroast/internal/adapter/github"
	"github.com/m-zajac/ghroast/internal/api/grpc"
	"github.com/m-zajac/ghroast/internal/api/http"
	"github.com/m-zajac/ghroast/internal/app"
	"github.com/m-zajac/ghroast/internal/database"
	"github.com/m-zajac/ghroast/internal/limiter"
	"github.com/sirupsen/logrus"
)

type counterStore interface {
	app.CounterStore
	io.Closer
}

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	if err := godotenv.Load(); err != nil {
		l.Debugf("no .env file loaded: %v", err)
	}

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("coludn't parse config: %v", err)
	}

	httpClient := &netHttp.Client{
		Timeout: 30 * time.Second,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
		conf.GithubAPIRateBurst,
	)

	githubClient := github.NewClient(
		limitedHTTPClient,
		conf.GithubAPIAddress,
		conf.GithubAPIToken,
	)

	generator, err := gemini.NewClient(context.Background(), conf.GeminiAPIKey, conf.GeminiModel)
	if err != nil {
		l.Fatalf("couldn't create gemini client: %v", err)
	}

	counter, err := openCounterStore(conf)
	if err != nil {
		l.Fatalf("couldn't open counter store: %v", err)
	}
	defer counter.Close()

	service := app.NewService(
		githubClient,
		generator,
		counter,
		conf.ServiceResponseTimeout,
		l.WithField("component", "service"),
	)

	var clientLimiter *http.ClientLimiter
	if conf.ClientRateLimit > 0 {
		clientLimiter, err = http.NewClientLimiter(
			conf.ClientRateLimit,
			conf.ClientRateBurst,
			conf.ClientLimiterCacheSize,
		)
		if err != nil {
			l.Fatalf("couldn't create client limiter: %v", err)
		}
	}

	mux := http.NewMux(
		service,
		conf.ServiceResponseTimeout+5*time.Second,
		clientLimiter,
		l.WithField("component", "mux"),
	)
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	grpcService := grpc.NewService(service)
	grpcServer := grpc.NewServer(
		grpcService,
		conf.GRPCServerAddress,
		l.WithField("component", "grpcServer"),
	)

	l.WithFields(logrus.Fields{
		"model":   generator.Model(),
		"counter": conf.CounterBackend,
	}).Info("starting servers")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		server.Run()
		wg.Done()
	}()
	wg.Add(1)
	go func() {
		if err := grpcServer.Run(); err != nil {
			l.Fatalf("couldn't run grpc server: %v", err)
		}
		wg.Done()
	}()
	wg.Wait()
}

func openCounterStore(conf Config) (counterStore, error) {
	switch conf.CounterBackend {
	case "bolt":
		return database.NewBoltCounterStore(conf.CounterDBPath, conf.CounterDBBucketName)
	case "sqlite":
		return database.NewSQLiteCounterStore(conf.CounterDBPath)
	default:
		return nil, fmt.Errorf("unknown counter backend %q", conf.CounterBackend)
	}
}
