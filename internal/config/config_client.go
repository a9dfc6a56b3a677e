package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the sync transport layer.
type ClientAdapter struct {
	// BaseURL is the base URL of the remote sync server.
	BaseURL string
	// AuthToken is the optional bearer token attached to outbound requests.
	AuthToken string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string (file path).
	DSN string
}

// ClientStorage groups local storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync groups orchestrator tuning knobs.
type ClientSync struct {
	// BatchSize bounds the number of operations per outgoing batch.
	BatchSize int
	// RetryBaseDelay is the backoff delay after the first transient failure.
	RetryBaseDelay time.Duration
	// RetryMaxDelay caps the exponential backoff delay.
	RetryMaxDelay time.Duration
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the periodic sync worker runs.
	SyncInterval time.Duration
	// ConnectivityPollInterval defines how often connectivity is probed.
	ConnectivityPollInterval time.Duration
}

// ClientConfig is the top-level sync client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains transport address, token, and timeout.
	Adapter ClientAdapter
	// Storage contains local storage settings.
	Storage ClientStorage
	// Sync contains orchestrator tuning knobs.
	Sync ClientSync
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the sync runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			AuthToken:      cfg.Adapter.AuthToken,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Sync: ClientSync{
			BatchSize:      cfg.Sync.BatchSize,
			RetryBaseDelay: cfg.Sync.RetryBaseDelay,
			RetryMaxDelay:  cfg.Sync.RetryMaxDelay,
		},
		Workers: ClientWorkers{
			SyncInterval:             cfg.Workers.SyncInterval,
			ConnectivityPollInterval: cfg.Workers.ConnectivityPollInterval,
		},
	}

	return clientCfg, clientCfg.validate()
}
