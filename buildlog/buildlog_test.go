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

package buildlog

import (
	"path/filepath"
	"testing"
)

func TestInsertAndRecent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixgen-build.db")
	l, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer l.Close()

	records := []Record{
		{StartedAt: "2026-08-01T00:00:00Z", DurationMs: 12, InputPath: "a.xml", TagCount: 5, GroupCount: 1, MessageCount: 2},
		{StartedAt: "2026-08-02T00:00:00Z", DurationMs: 9, InputPath: "b.xml", TagCount: 7, GroupCount: 0, MessageCount: 3, Error: "NoFields"},
	}
	for _, r := range records {
		if err := l.Insert(r); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	got, err := l.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].InputPath != "b.xml" {
		t.Errorf("expected newest-first order, got %q first", got[0].InputPath)
	}
	if got[0].Error != "NoFields" {
		t.Errorf("expected error column round-trip, got %q", got[0].Error)
	}
	if got[1].Error != "" {
		t.Errorf("expected empty error for successful run, got %q", got[1].Error)
	}
}

func TestRecentLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixgen-build.db")
	l, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer l.Close()

	for i := 0; i < 5; i++ {
		if err := l.Insert(Record{StartedAt: "2026-08-01T00:00:00Z", InputPath: "a.xml"}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	got, err := l.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected Recent(2) to cap at 2 rows, got %d", len(got))
	}
}
