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

package main

import "testing"

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := parseArgs([]string{"dict.xml"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if cfg.headerDir != "include" || cfg.sourceDir != "src" {
		t.Errorf("expected default dirs include/src, got %q/%q", cfg.headerDir, cfg.sourceDir)
	}
	if cfg.inputPath != "dict.xml" {
		t.Errorf("expected input path dict.xml, got %q", cfg.inputPath)
	}
	if cfg.repl {
		t.Error("expected repl false by default")
	}
}

func TestParseArgsShortFlags(t *testing.T) {
	cfg, err := parseArgs([]string{"-i", "hdrs", "-s", "srcs", "dict.xml"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if cfg.headerDir != "hdrs" || cfg.sourceDir != "srcs" {
		t.Errorf("expected hdrs/srcs, got %q/%q", cfg.headerDir, cfg.sourceDir)
	}
}

func TestParseArgsRepl(t *testing.T) {
	cfg, err := parseArgs([]string{"repl", "dict.xml"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if !cfg.repl {
		t.Error("expected repl true")
	}
	if cfg.inputPath != "dict.xml" {
		t.Errorf("expected input path dict.xml, got %q", cfg.inputPath)
	}
}

func TestParseArgsMissingInput(t *testing.T) {
	if _, err := parseArgs([]string{}); err == nil {
		t.Fatal("expected error for missing input path")
	}
}

func TestParseArgsHistory(t *testing.T) {
	cfg, err := parseArgs([]string{"history", "--build-log", "builds.db"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if !cfg.history {
		t.Error("expected history true")
	}
	if cfg.historyLimit != 20 {
		t.Errorf("expected default history limit 20, got %d", cfg.historyLimit)
	}
}

func TestParseArgsHistoryWithLimit(t *testing.T) {
	cfg, err := parseArgs([]string{"history", "--build-log", "builds.db", "-n", "5"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if cfg.historyLimit != 5 {
		t.Errorf("expected history limit 5, got %d", cfg.historyLimit)
	}
}

func TestParseArgsHistoryRequiresBuildLog(t *testing.T) {
	if _, err := parseArgs([]string{"history"}); err == nil {
		t.Fatal("expected error when history is used without --build-log")
	}
}

func TestParseArgsHistoryRejectsExtraArgs(t *testing.T) {
	if _, err := parseArgs([]string{"history", "--build-log", "builds.db", "extra.xml"}); err == nil {
		t.Fatal("expected error when history is given a positional argument")
	}
}
