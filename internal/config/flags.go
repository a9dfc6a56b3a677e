package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-server-url base URL of the remote sync server
//	-auth-token bearer token for outbound requests
//	-d database DSN (SQLite file path)
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-batch-size maximum operations per outgoing batch
//	-retry-base-delay backoff delay after the first transient failure
//	-retry-max-delay backoff delay cap
//	-sync-interval periodic sync interval (e.g., "5m")
//	-connectivity-poll-interval connectivity probe interval (e.g., "30s")
func ParseFlags() *StructuredConfig {
	var serverURL string
	var authToken string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var batchSize int
	var retryBaseDelay time.Duration
	var retryMaxDelay time.Duration
	var syncInterval time.Duration
	var connectivityPollInterval time.Duration

	flag.StringVar(&serverURL, "server-url", "", "Sync server base URL")
	flag.StringVar(&authToken, "auth-token", "", "Bearer token for outbound requests")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&batchSize, "batch-size", 0, "Maximum operations per outgoing batch")
	flag.DurationVar(&retryBaseDelay, "retry-base-delay", 0, "Backoff delay after the first transient failure")
	flag.DurationVar(&retryMaxDelay, "retry-max-delay", 0, "Backoff delay cap")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 5m)")
	flag.DurationVar(&connectivityPollInterval, "connectivity-poll-interval", 0, "Connectivity probe interval (e.g., 30s)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			BaseURL:        serverURL,
			AuthToken:      authToken,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			BatchSize:      batchSize,
			RetryBaseDelay: retryBaseDelay,
			RetryMaxDelay:  retryMaxDelay,
		},
		Workers: Workers{
			SyncInterval:             syncInterval,
			ConnectivityPollInterval: connectivityPollInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
