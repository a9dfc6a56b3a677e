// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-habit-sync/internal/logger"
	"github.com/MKhiriev/go-habit-sync/internal/utils"
	"github.com/MKhiriev/go-habit-sync/models"
)

type entityVersionRepository struct {
	*DB
	logger *logger.Logger
}

func NewEntityVersionRepository(db *DB, logger *logger.Logger) EntityVersionRepository {
	return &entityVersionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *entityVersionRepository) Get(ctx context.Context, entityType, entityID string) (models.EntityVersionMetadata, error) {
	log := logger.FromContext(ctx)

	var (
		meta     models.EntityVersionMetadata
		checksum sql.NullString
	)
	row := r.DB.QueryRowContext(ctx, getEntityVersion, entityType, entityID)

	scanErr := row.Scan(
		&meta.EntityType,
		&meta.EntityID,
		&meta.LocalVersion,
		&meta.ServerVersion,
		&meta.LastModified,
		&checksum,
		&meta.IsDirty,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.EntityVersionMetadata{}, ErrEntityNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "entityVersionRepository.Get").
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Msg("failed to scan entity version row")
		return models.EntityVersionMetadata{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}
	meta.Checksum = checksum.String

	return meta, nil
}

func (r *entityVersionRepository) Upsert(ctx context.Context, entity models.SyncedEntity, stillDirty bool) error {
	log := logger.FromContext(ctx)

	checksum, err := utils.Checksum(entity.Data)
	if err != nil {
		log.Err(err).
			Str("func", "entityVersionRepository.Upsert").
			Str("entity_type", entity.EntityType).
			Str("entity_id", entity.ID).
			Msg("failed to compute payload checksum")
		return fmt.Errorf("failed to compute checksum for entity %s/%s: %w", entity.EntityType, entity.ID, err)
	}

	_, err = r.DB.ExecContext(ctx, upsertEntityVersion,
		entity.EntityType,
		entity.ID,
		entity.Version,
		entity.Version,
		entity.UpdatedAt,
		checksum,
		stillDirty,
		entity.Data,
		entity.IsDeleted,
	)
	if err != nil {
		log.Err(err).
			Str("func", "entityVersionRepository.Upsert").
			Str("entity_type", entity.EntityType).
			Str("entity_id", entity.ID).
			Int64("server_version", entity.Version).
			Msg("failed to execute upsert for entity version")
		return fmt.Errorf("failed to upsert entity version %s/%s: %w", entity.EntityType, entity.ID, err)
	}

	return nil
}

func (r *entityVersionRepository) GetEntity(ctx context.Context, entityType, entityID string) (models.SyncedEntity, error) {
	log := logger.FromContext(ctx)

	var entity models.SyncedEntity
	row := r.DB.QueryRowContext(ctx, getEntitySnapshot, entityType, entityID)

	scanErr := row.Scan(
		&entity.EntityType,
		&entity.ID,
		&entity.Data,
		&entity.Version,
		&entity.IsDeleted,
		&entity.UpdatedAt,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.SyncedEntity{}, ErrEntityNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "entityVersionRepository.GetEntity").
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Msg("failed to scan entity snapshot row")
		return models.SyncedEntity{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return entity, nil
}

func (r *entityVersionRepository) MarkDirty(ctx context.Context, entityType, entityID string, modifiedAt time.Time) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, markEntityDirty, entityType, entityID, modifiedAt)
	if err != nil {
		log.Err(err).
			Str("func", "entityVersionRepository.MarkDirty").
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Msg("failed to mark entity dirty")
		return fmt.Errorf("failed to mark entity %s/%s dirty: %w", entityType, entityID, err)
	}

	return nil
}

func (r *entityVersionRepository) SetDirty(ctx context.Context, entityType, entityID string, dirty bool) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, setEntityDirty, entityType, entityID, dirty)
	if err != nil {
		log.Err(err).
			Str("func", "entityVersionRepository.SetDirty").
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Bool("dirty", dirty).
			Msg("failed to set dirty flag")
		return fmt.Errorf("failed to set dirty flag for entity %s/%s: %w", entityType, entityID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check dirty flag update result: %w", err)
	}
	if affected == 0 {
		return ErrEntityNotFound
	}

	return nil
}
