// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	insertOperation = `
		INSERT INTO sync_operations (
			id,
			type,
			entity_type,
			entity_id,
			data,
			created_at,
			base_version,
			status,
			retry_count,
			next_attempt_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	getSingleOperation = `
		SELECT
			id,
			type,
			entity_type,
			entity_id,
			data,
			created_at,
			base_version,
			status,
			retry_count
		FROM sync_operations
		WHERE id = $1;`

	getAllOperations = `
		SELECT
			id,
			type,
			entity_type,
			entity_id,
			data,
			created_at,
			base_version,
			status,
			retry_count
		FROM sync_operations
		ORDER BY seq ASC;`

	updateOperationStatus = `
		UPDATE sync_operations
		SET status = $1
		WHERE id = $2;`

	incrementOperationRetry = `
		UPDATE sync_operations
		SET retry_count = retry_count + 1,
		    next_attempt_at = $1,
		    status = 'pending'
		WHERE id = $2;`

	deleteOperation = `
		DELETE FROM sync_operations
		WHERE id = $1;`

	countEntityOperations = `
		SELECT COUNT(*)
		FROM sync_operations
		WHERE entity_type = $1 AND entity_id = $2 AND status != 'completed';`

	countOperationsByStatus = `
		SELECT status, COUNT(*)
		FROM sync_operations
		GROUP BY status;`

	getEntityVersion = `
		SELECT
			entity_type,
			entity_id,
			local_version,
			server_version,
			last_modified,
			checksum,
			is_dirty
		FROM entity_versions
		WHERE entity_type = $1 AND entity_id = $2;`

	getEntitySnapshot = `
		SELECT
			entity_type,
			entity_id,
			data,
			server_version,
			is_deleted,
			last_modified
		FROM entity_versions
		WHERE entity_type = $1 AND entity_id = $2;`

	// The local version catches up to the server version once the entity
	// has no queued operations left (is_dirty arrives as false).
	upsertEntityVersion = `
		INSERT INTO entity_versions (
			entity_type,
			entity_id,
			local_version,
			server_version,
			last_modified,
			checksum,
			is_dirty,
			data,
			is_deleted
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (entity_type, entity_id) DO UPDATE SET
			server_version = excluded.server_version,
			last_modified  = excluded.last_modified,
			checksum       = excluded.checksum,
			is_dirty       = excluded.is_dirty,
			data           = excluded.data,
			is_deleted     = excluded.is_deleted,
			local_version  = CASE
				WHEN excluded.is_dirty THEN entity_versions.local_version
				ELSE excluded.server_version
			END;`

	// local_version is the last server-confirmed version the client has
	// seen; queued edits are tracked by is_dirty alone, so marking dirty
	// never touches the version columns.
	markEntityDirty = `
		INSERT INTO entity_versions (
			entity_type,
			entity_id,
			local_version,
			server_version,
			last_modified,
			is_dirty
		) VALUES ($1, $2, 0, 0, $3, TRUE)
		ON CONFLICT (entity_type, entity_id) DO UPDATE SET
			last_modified = excluded.last_modified,
			is_dirty      = TRUE;`

	setEntityDirty = `
		UPDATE entity_versions
		SET is_dirty = $3
		WHERE entity_type = $1 AND entity_id = $2;`

	getSyncStateValue = `
		SELECT value
		FROM sync_state
		WHERE key = $1;`

	setSyncStateValue = `
		INSERT INTO sync_state (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`
)
