package main

import "time"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// GRPCServerAddress - listen address for grpc server
	GRPCServerAddress string `default:"0.0.0.0:9090"`

	// ServiceResponseTimeout - timeout for a whole roast, including model generation
	ServiceResponseTimeout time.Duration `default:"60s"`

	// GithubAPIAddress - address for github api with protocol. GraphQL endpoint is {address}/graphql
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIToken - auth token for github api. GraphQL api doesn't work without it
	GithubAPIToken string `default:""`

	// GithubAPIRateLimit - max frequency for github api calls
	GithubAPIRateLimit float64 `default:"5"`

	// GithubAPIRateBurst - max burst of github api calls
	GithubAPIRateBurst int `default:"4"`

	// GeminiAPIKey - api key for generative language api
	GeminiAPIKey string `required:"true"`

	// GeminiModel - model used for roast generation
	GeminiModel string `default:"gemini-1.5-flash"`

	// CounterBackend - roast counter storage, "bolt" or "sqlite"
	CounterBackend string `default:"bolt"`

	// CounterDBPath - filepath for counter db data
	CounterDBPath string `default:"./ghroast.data"`

	// CounterDBBucketName - bolt db bucket name, unused by sqlite backend
	CounterDBBucketName string `default:"ghroast"`

	// ClientRateLimit - max frequency of roast requests per client. Zero disables client rate limiting
	ClientRateLimit float64 `default:"0.2"`

	// ClientRateBurst - max burst of roast requests per client
	ClientRateBurst int `default:"3"`

	// ClientLimiterCacheSize - maximum number of tracked clients
	ClientLimiterCacheSize int `default:"10000"`
}
