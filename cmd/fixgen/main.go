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

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	flag "github.com/spf13/pflag"

	"fixgen/buildlog"
	"fixgen/compile"
	"fixgen/dispatch"
	"fixgen/explorer"
	"fixgen/fixerr"
	"fixgen/fixsample"
	"fixgen/templates"
)

type config struct {
	inputPath    string
	headerDir    string
	sourceDir    string
	templateArg  string
	buildLogArg  string
	sampleDir    string
	repl         bool
	history      bool
	historyLimit int
}

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseArgs(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("fixgen", flag.ContinueOnError)
	fs.StringVarP(&cfg.headerDir, "header-dir", "i", "include", "directory to write the generated header into")
	fs.StringVarP(&cfg.sourceDir, "source-dir", "s", "src", "directory to write the generated source into")
	fs.StringVar(&cfg.templateArg, "template", "", "external source template file (default: embedded template)")
	fs.StringVar(&cfg.buildLogArg, "build-log", "", "path to a SQLite build log (default: disabled)")
	fs.StringVar(&cfg.sampleDir, "sample-dir", "", "directory to write quickfix sample messages into (default: disabled)")
	fs.IntVarP(&cfg.historyLimit, "limit", "n", 20, "number of recent build log rows to show (history subcommand only)")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	rest := fs.Args()
	if len(rest) > 0 && rest[0] == "repl" {
		cfg.repl = true
		rest = rest[1:]
	} else if len(rest) > 0 && rest[0] == "history" {
		cfg.history = true
		rest = rest[1:]
	}

	if cfg.history {
		if cfg.buildLogArg == "" {
			return cfg, fmt.Errorf("history requires --build-log")
		}
		if len(rest) != 0 {
			return cfg, fmt.Errorf("usage: fixgen history --build-log <path> [-n <limit>]")
		}
		return cfg, nil
	}

	if len(rest) != 1 {
		return cfg, fmt.Errorf("usage: fixgen [repl] [flags] <input.xml>")
	}
	cfg.inputPath = rest[0]
	return cfg, nil
}

func run(cfg config) error {
	switch {
	case cfg.history:
		return runHistory(cfg)
	case cfg.repl:
		return runRepl(cfg)
	default:
		return runCompile(cfg)
	}
}

func runCompile(cfg config) error {
	start := time.Now()

	if err := checkOutputDir("--header-dir", cfg.headerDir); err != nil {
		return err
	}
	if err := checkOutputDir("--source-dir", cfg.sourceDir); err != nil {
		return err
	}

	input, err := os.ReadFile(cfg.inputPath)
	if err != nil {
		return fixerr.Wrap(fixerr.IO, cfg.inputPath, nil, "failed to open input", err)
	}
	inputHash := hashBytes(input)

	rec := buildlog.Record{
		StartedAt: start.UTC().Format(time.RFC3339),
		InputPath: cfg.inputPath,
		InputHash: inputHash,
	}

	result, runErr := compile.Run(bytes.NewReader(input))
	if runErr != nil {
		rec.Error = runErr.Error()
		logBuild(cfg, start, rec)
		return runErr
	}
	rec.TagCount = result.EnumTags.Len()
	rec.GroupCount = result.Pruned.Groups.Len()
	rec.MessageCount = len(result.Messages)

	base := strings.TrimSuffix(filepath.Base(cfg.inputPath), filepath.Ext(cfg.inputPath))
	prefix := strings.ReplaceAll(base, ".", "_")

	tmpl, err := loadTemplate(cfg.templateArg)
	if err != nil {
		return err
	}

	headerBody := compile.Header(prefix, result)
	headerPath := filepath.Join(cfg.headerDir, base+".h")
	if err := writeHeader(headerPath, base, headerBody); err != nil {
		return err
	}

	fragments := compile.Source(prefix, result)
	sourcePath := filepath.Join(cfg.sourceDir, base+".c")
	if err := writeSource(tmpl, sourcePath, base, prefix, result, fragments); err != nil {
		return err
	}

	if cfg.sampleDir != "" {
		if err := writeSamples(cfg.sampleDir, result); err != nil {
			return err
		}
	}

	rec.HeaderPath = headerPath
	rec.SourcePath = sourcePath
	if headerData, err := os.ReadFile(headerPath); err == nil {
		rec.HeaderHash = hashBytes(headerData)
	}
	if sourceData, err := os.ReadFile(sourcePath); err == nil {
		rec.SourceHash = hashBytes(sourceData)
	}

	logBuild(cfg, start, rec)
	return nil
}

func hashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func checkOutputDir(flagName, dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fixerr.BadOutputDirErr(flagName, dir)
	}
	return nil
}

func loadTemplate(path string) (*template.Template, error) {
	if path == "" {
		return template.New("fixgen").Parse(templates.Default)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fixerr.Wrap(fixerr.IO, path, nil, "failed to load template", err)
	}
	return template.New(filepath.Base(path)).Parse(string(data))
}

func writeHeader(path, base, body string) error {
	f, err := os.Create(path)
	if err != nil {
		return fixerr.Wrap(fixerr.IO, path, nil, "failed to open header output", err)
	}
	defer f.Close()

	guard := strings.ToUpper(strings.ReplaceAll(base, ".", "_")) + "_H_"
	fmt.Fprintf(f, "/* Code generated by fixgen from %s. DO NOT EDIT. */\n\n", base)
	fmt.Fprintf(f, "#ifndef %s\n#define %s\n\n", guard, guard)
	fmt.Fprintf(f, "#include \"fix.h\"\n\n")
	fmt.Fprintf(f, "#ifdef __cplusplus\nextern \"C\" {\n#endif\n\n")
	f.WriteString(body)
	fmt.Fprintf(f, "\n#ifdef __cplusplus\n}\n#endif\n\n")
	fmt.Fprintf(f, "#endif /* %s */\n", guard)
	return nil
}

type templateData struct {
	BaseName    string
	Prefix      string
	FixVersion  string
	Groups      string
	Common      string
	Messages    string
	ParserTable string
}

func writeSource(tmpl *template.Template, path, base, prefix string, result *compile.Result, fragments compile.SourceFragments) error {
	f, err := os.Create(path)
	if err != nil {
		return fixerr.Wrap(fixerr.IO, path, nil, "failed to open source output", err)
	}
	defer f.Close()

	data := templateData{
		BaseName:    base,
		Prefix:      prefix,
		FixVersion:  result.Version.String(),
		Groups:      fragments.Groups,
		Common:      fragments.Common,
		Messages:    fragments.Messages,
		ParserTable: fragments.ParserTable,
	}
	if err := tmpl.Execute(f, data); err != nil {
		return fixerr.Wrap(fixerr.IO, path, nil, "failed to render source template", err)
	}
	return nil
}

func writeSamples(dir string, result *compile.Result) error {
	samples := fixsample.Build(result.Common, result.Messages)
	for name, msg := range samples {
		path := filepath.Join(dir, name+".fix")
		if err := os.WriteFile(path, []byte(msg.String()), 0o644); err != nil {
			return fixerr.Wrap(fixerr.IO, path, nil, "failed to write sample message", err)
		}
	}
	return nil
}

func logBuild(cfg config, start time.Time, rec buildlog.Record) {
	if cfg.buildLogArg == "" {
		return
	}
	l, err := buildlog.Open(cfg.buildLogArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: failed to open build log:", err)
		return
	}
	defer l.Close()

	rec.DurationMs = time.Since(start).Milliseconds()
	if err := l.Insert(rec); err != nil {
		fmt.Fprintln(os.Stderr, "warning: failed to record build log entry:", err)
	}
}

// runHistory lists the build log's most recent rows, newest first.
func runHistory(cfg config) error {
	l, err := buildlog.Open(cfg.buildLogArg)
	if err != nil {
		return fmt.Errorf("failed to open build log: %v", err)
	}
	defer l.Close()

	records, err := l.Recent(cfg.historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read build log: %v", err)
	}

	for _, r := range records {
		status := "ok"
		if r.Error != "" {
			status = "FAILED: " + r.Error
		}
		fmt.Printf("%s  %6dms  %-40s -> %s, %s  [%s]\n",
			r.StartedAt, r.DurationMs, r.InputPath, r.HeaderPath, r.SourcePath, status)
	}
	return nil
}

func runRepl(cfg config) error {
	build := func() (*explorer.Model, error) {
		f, err := os.Open(cfg.inputPath)
		if err != nil {
			return nil, fixerr.Wrap(fixerr.IO, cfg.inputPath, nil, "failed to open input", err)
		}
		defer f.Close()

		result, err := compile.Run(f)
		if err != nil {
			return nil, err
		}
		trie, err := dispatch.Build(result.Messages)
		if err != nil {
			return nil, err
		}
		return &explorer.Model{
			Tags:     result.Tags,
			Pruned:   result.Pruned,
			Messages: result.Messages,
			Trie:     trie,
		}, nil
	}

	m, err := build()
	if err != nil {
		return err
	}

	explorer.Run(m, filepath.Base(cfg.inputPath), func() (*explorer.Model, error) {
		return build()
	})
	return nil
}
