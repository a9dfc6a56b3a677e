// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote sync server.
//
// The primary abstraction is [SyncTransport], which decouples the sync
// orchestrator from the underlying protocol. The package currently ships an
// HTTP/REST implementation ([NewHTTPSyncTransport]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrBadRequest] for 400, [ErrUnauthorized] for 401). Transient
// server and network failures are recognisable via [IsTransient].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-habit-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_transport_mock.go -package=mock

// SyncTransport defines transport-agnostic communication with the remote sync
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type SyncTransport interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests. Authentication is entirely the transport's
	// concern; the sync core only passes the token through.
	SetToken(token string)

	// Token returns the bearer token currently stored in the transport, or
	// an empty string if no token has been set yet.
	Token() string

	// Send submits one batch of pending operations together with the
	// client's sync cursor and returns the server's per-operation results
	// and unseen server-side changes. The call must honour ctx
	// cancellation; a cancelled call leaves the caller free to retry the
	// same batch later (operation ids are stable, so resends are
	// idempotent from the server's perspective).
	Send(ctx context.Context, req models.BatchSyncRequest) (models.BatchSyncResponse, error)

	// Ping probes the server's health endpoint. Used by the connectivity
	// watcher to detect online transitions. Returns nil when the server
	// is reachable.
	Ping(ctx context.Context) error
}

// ConnectivityNotifier signals transitions from offline to online so the
// orchestrator can start a sync cycle as soon as the network returns.
type ConnectivityNotifier interface {
	// Online returns a channel that receives a value on each
	// offline-to-online transition. The channel is closed by Stop.
	Online() <-chan struct{}

	// Start begins watching for connectivity changes until ctx is
	// cancelled or Stop is called.
	Start(ctx context.Context)

	// Stop terminates watching and closes the Online channel.
	Stop()
}
