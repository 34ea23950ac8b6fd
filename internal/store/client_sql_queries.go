// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createKVTable = `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`

	upsertKVEntry = `
		INSERT INTO kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	getKVEntry = `
		SELECT value FROM kv WHERE key = $1;`

	removeKVEntry = `
		DELETE FROM kv WHERE key = $1;`
)
