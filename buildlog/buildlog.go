/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package buildlog records a write-only audit trail of compiler
// invocations in SQLite: one row per run, never read back into a
// later compile. It is a developer convenience for answering "what
// changed between this run and the last one", not a cache and not the
// incremental-regeneration feature the generator deliberately omits.
package buildlog

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS builds (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at TEXT NOT NULL,
	duration_ms INTEGER NOT NULL,
	input_path TEXT NOT NULL,
	input_hash TEXT NOT NULL,
	header_path TEXT NOT NULL,
	header_hash TEXT NOT NULL,
	source_path TEXT NOT NULL,
	source_hash TEXT NOT NULL,
	tag_count INTEGER NOT NULL,
	group_count INTEGER NOT NULL,
	message_count INTEGER NOT NULL,
	error TEXT
)`

const insertBuildQuery = `INSERT INTO builds (
	started_at, duration_ms, input_path, input_hash,
	header_path, header_hash, source_path, source_hash,
	tag_count, group_count, message_count, error
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const recentBuildsQuery = `SELECT
	started_at, duration_ms, input_path, header_path, source_path,
	tag_count, group_count, message_count, error
FROM builds ORDER BY id DESC LIMIT ?`

// Log provides SQLite-backed storage for compiler build records. The
// insert statement is prepared once per Open and reused by every Insert
// on that Log.
type Log struct {
	db        *sql.DB
	stmtBuild *sql.Stmt
}

// Open opens (creating if absent) the SQLite database at path and
// ensures its schema exists.
func Open(path string) (*Log, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open build log: %v", err)
	}

	l := &Log{db: db}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize build log schema: %v", err)
	}

	if l.stmtBuild, err = db.Prepare(insertBuildQuery); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to prepare build insert statement: %v", err)
	}

	log.Printf("build log initialized at %s", path)
	return l, nil
}

func (l *Log) Close() error {
	if l.stmtBuild != nil {
		_ = l.stmtBuild.Close()
	}
	return l.db.Close()
}

// Record is one compiler invocation's outcome.
type Record struct {
	StartedAt              string
	DurationMs             int64
	InputPath, InputHash   string
	HeaderPath, HeaderHash string
	SourcePath, SourceHash string
	TagCount               int
	GroupCount             int
	MessageCount           int
	Error                  string
}

// Insert appends r as a new row. Error is the empty string for a
// successful run.
func (l *Log) Insert(r Record) error {
	_, err := l.stmtBuild.Exec(
		r.StartedAt, r.DurationMs, r.InputPath, r.InputHash,
		r.HeaderPath, r.HeaderHash, r.SourcePath, r.SourceHash,
		r.TagCount, r.GroupCount, r.MessageCount, nullIfEmpty(r.Error),
	)
	return err
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// Recent returns the n most recent build records, newest first.
func (l *Log) Recent(n int) ([]Record, error) {
	rows, err := l.db.Query(recentBuildsQuery, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var errMsg sql.NullString
		if err := rows.Scan(&r.StartedAt, &r.DurationMs, &r.InputPath, &r.HeaderPath, &r.SourcePath,
			&r.TagCount, &r.GroupCount, &r.MessageCount, &errMsg); err != nil {
			return nil, err
		}
		r.Error = errMsg.String
		out = append(out, r)
	}
	return out, rows.Err()
}
