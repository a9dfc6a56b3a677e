// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-habit-sync/internal/logger"
	"github.com/MKhiriev/go-habit-sync/internal/mock"
)

func TestSyncWorker_TriggersSyncOnTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mock.NewMockSyncManager(ctrl)
	synced := make(chan struct{}, 1)
	manager.EXPECT().ForceSync(gomock.Any()).DoAndReturn(func(context.Context) error {
		select {
		case synced <- struct{}{}:
		default:
		}
		return nil
	}).MinTimes(1)

	worker := NewSyncWorker(manager, 10*time.Millisecond, logger.Nop())
	worker.Start(context.Background())
	defer worker.Stop()

	select {
	case <-synced:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a sync cycle within the ticker interval")
	}
}

func TestSyncWorker_KeepsTickingAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mock.NewMockSyncManager(ctrl)
	calls := make(chan struct{}, 2)
	gomock.InOrder(
		manager.EXPECT().ForceSync(gomock.Any()).DoAndReturn(func(context.Context) error {
			calls <- struct{}{}
			return errors.New("server unreachable")
		}),
		manager.EXPECT().ForceSync(gomock.Any()).DoAndReturn(func(context.Context) error {
			calls <- struct{}{}
			return nil
		}).AnyTimes(),
	)

	worker := NewSyncWorker(manager, 10*time.Millisecond, logger.Nop())
	worker.Start(context.Background())
	defer worker.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("worker stopped ticking after a failed cycle")
		}
	}
}

func TestSyncWorker_StopHaltsTicking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mock.NewMockSyncManager(ctrl)
	manager.EXPECT().ForceSync(gomock.Any()).Return(nil).AnyTimes()

	worker := NewSyncWorker(manager, 5*time.Millisecond, logger.Nop())
	worker.Start(context.Background())
	time.Sleep(20 * time.Millisecond)

	worker.Stop()
	// Stop blocks until the goroutine has exited, so a second call is a no-op.
	assert.NotPanics(t, worker.Stop)
}

func TestSyncWorker_ContextCancelStopsWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mock.NewMockSyncManager(ctrl)
	manager.EXPECT().ForceSync(gomock.Any()).Return(nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	worker := NewSyncWorker(manager, 5*time.Millisecond, logger.Nop())
	worker.Start(ctx)

	cancel()
	worker.Stop()
}
