// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-habit-sync/internal/logger"
	"github.com/MKhiriev/go-habit-sync/models"
)

type operationQueueRepository struct {
	*DB
	logger *logger.Logger
}

func NewOperationQueueRepository(db *DB, logger *logger.Logger) OperationQueueRepository {
	return &operationQueueRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *operationQueueRepository) Enqueue(ctx context.Context, op models.SyncOperation) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, insertOperation,
		op.ID,
		op.Type,
		op.EntityType,
		op.EntityID,
		op.Data,
		op.Timestamp,
		op.BaseVersion,
		models.StatusPending,
		0,
		nil,
	)
	if err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.Enqueue").
			Str("operation_id", op.ID).
			Str("entity", op.EntityKey()).
			Msg("failed to insert operation")
		return fmt.Errorf("failed to enqueue operation (id=%s): %w", op.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check enqueue result: %w", err)
	}
	if affected == 0 {
		return ErrOperationNotSaved
	}

	return nil
}

func (r *operationQueueRepository) Drain(ctx context.Context) ([]models.SyncOperation, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllOperations)
	if err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.Drain").
			Msg("failed to execute query for all queued operations")
		return nil, fmt.Errorf("failed to query queued operations: %w", err)
	}
	defer rows.Close()

	return r.scanOperations(rows)
}

func (r *operationQueueRepository) PendingBatch(ctx context.Context, limit int, now time.Time, excludedEntities []string) ([]models.SyncOperation, error) {
	log := logger.FromContext(ctx)

	qb := sq.Select(
		"id", "type", "entity_type", "entity_id", "data",
		"created_at", "base_version", "status", "retry_count",
	).
		From("sync_operations").
		Where(sq.Eq{"status": models.StatusPending}).
		Where(sq.Or{
			sq.Eq{"next_attempt_at": nil},
			sq.LtOrEq{"next_attempt_at": now},
		}).
		OrderBy("seq ASC").
		PlaceholderFormat(sq.Dollar)

	if len(excludedEntities) > 0 {
		qb = qb.Where(sq.NotEq{"entity_type || '/' || entity_id": excludedEntities})
	}
	if limit > 0 {
		qb = qb.Limit(uint64(limit))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.PendingBatch").
			Msg("failed to build pending batch query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.PendingBatch").
			Msg("failed to execute pending batch query")
		return nil, fmt.Errorf("failed to query pending operations: %w", err)
	}
	defer rows.Close()

	return r.scanOperations(rows)
}

func (r *operationQueueRepository) Get(ctx context.Context, id string) (models.SyncOperation, error) {
	log := logger.FromContext(ctx)

	var op models.SyncOperation
	row := r.DB.QueryRowContext(ctx, getSingleOperation, id)

	scanErr := row.Scan(
		&op.ID,
		&op.Type,
		&op.EntityType,
		&op.EntityID,
		&op.Data,
		&op.Timestamp,
		&op.BaseVersion,
		&op.Status,
		&op.RetryCount,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.SyncOperation{}, ErrOperationNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "operationQueueRepository.Get").
			Str("operation_id", id).
			Msg("failed to scan operation row")
		return models.SyncOperation{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return op, nil
}

func (r *operationQueueRepository) MarkStatus(ctx context.Context, id string, status models.OperationStatus) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, updateOperationStatus, status, id)
	if err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.MarkStatus").
			Str("operation_id", id).
			Str("status", string(status)).
			Msg("failed to update operation status")
		return fmt.Errorf("failed to update operation status (id=%s): %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check status update result: %w", err)
	}
	if affected == 0 {
		return ErrOperationNotFound
	}

	return nil
}

func (r *operationQueueRepository) MarkStatusAll(ctx context.Context, ids []string, status models.OperationStatus) error {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return nil
	}

	query, args, err := sq.Update("sync_operations").
		Set("status", status).
		Where(sq.Eq{"id": ids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.MarkStatusAll").
			Msg("failed to build bulk status update")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.MarkStatusAll").
			Str("status", string(status)).
			Int("operations", len(ids)).
			Msg("failed to execute bulk status update")
		return fmt.Errorf("failed to update operation statuses: %w", err)
	}

	return nil
}

func (r *operationQueueRepository) IncrementRetry(ctx context.Context, id string, nextAttemptAt time.Time) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, incrementOperationRetry, nextAttemptAt, id)
	if err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.IncrementRetry").
			Str("operation_id", id).
			Msg("failed to increment retry counter")
		return fmt.Errorf("failed to increment retry counter (id=%s): %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check retry update result: %w", err)
	}
	if affected == 0 {
		return ErrOperationNotFound
	}

	return nil
}

func (r *operationQueueRepository) Remove(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteOperation, id); err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.Remove").
			Str("operation_id", id).
			Msg("failed to delete operation")
		return fmt.Errorf("failed to delete operation (id=%s): %w", id, err)
	}

	return nil
}

func (r *operationQueueRepository) CountForEntity(ctx context.Context, entityType, entityID string) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	row := r.DB.QueryRowContext(ctx, countEntityOperations, entityType, entityID)
	if err := row.Scan(&count); err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.CountForEntity").
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Msg("failed to count entity operations")
		return 0, fmt.Errorf("failed to count operations for entity %s/%s: %w", entityType, entityID, err)
	}

	return count, nil
}

func (r *operationQueueRepository) CountByStatus(ctx context.Context) (map[models.OperationStatus]int, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, countOperationsByStatus)
	if err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.CountByStatus").
			Msg("failed to count operations by status")
		return nil, fmt.Errorf("failed to count operations by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.OperationStatus]int)
	for rows.Next() {
		var (
			status models.OperationStatus
			count  int
		)
		if scanErr := rows.Scan(&status, &count); scanErr != nil {
			log.Err(scanErr).
				Str("func", "operationQueueRepository.CountByStatus").
				Msg("failed to scan status count row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate status counts: %w", err)
	}

	return counts, nil
}

func (r *operationQueueRepository) scanOperations(rows *sql.Rows) ([]models.SyncOperation, error) {
	var ops []models.SyncOperation

	for rows.Next() {
		var op models.SyncOperation

		scanErr := rows.Scan(
			&op.ID,
			&op.Type,
			&op.EntityType,
			&op.EntityID,
			&op.Data,
			&op.Timestamp,
			&op.BaseVersion,
			&op.Status,
			&op.RetryCount,
		)
		if scanErr != nil {
			r.logger.Err(scanErr).
				Str("func", "operationQueueRepository.scanOperations").
				Msg("failed to scan operation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate operation rows: %w", err)
	}

	return ops, nil
}
