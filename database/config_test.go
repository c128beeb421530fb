/*
 * Copyright 2025 WITS contributors.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "database.yaml")
	body := `
connection:
  type: sqlite
  dbname: wits
  file_path: data/wits.db
  auto_create: true
  max_open_conns: 5
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	conn := cfg.ConnectionConfig
	if conn.Type != "sqlite" || conn.DBName != "wits" {
		t.Fatalf("connection = %+v", conn)
	}
	if conn.FilePath != "data/wits.db" || !conn.AutoCreate {
		t.Fatalf("sqlite settings = %q/%v", conn.FilePath, conn.AutoCreate)
	}
	if conn.MaxOpenConns != 5 {
		t.Fatalf("MaxOpenConns = %d, want 5", conn.MaxOpenConns)
	}
	// Absent fields keep the baked-in defaults
	if conn.MaxIdleConns != DefaultConnectionConfig().MaxIdleConns {
		t.Fatalf("MaxIdleConns = %d, want default", conn.MaxIdleConns)
	}
	if cfg.LoggingConfig.Level != "debug" {
		t.Fatalf("logging level = %q", cfg.LoggingConfig.Level)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCreateFromConfigRejectsUnsupportedType(t *testing.T) {
	f := NewDatabaseFactory()
	if _, err := f.CreateFromConfig(&ConnectionConfig{Type: "oracle"}); err == nil {
		t.Fatal("expected error for unsupported type")
	}
	if _, err := f.CreateFromConfig(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestCreateFromConfigEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")

	cfg := DefaultConnectionConfig()
	cfg.Type = "postgres"
	cfg.Host = "localhost"
	cfg.Port = 5432

	f := NewDatabaseFactory()
	if _, err := f.CreateFromConfig(cfg); err != nil {
		t.Fatalf("CreateFromConfig: %v", err)
	}
	if cfg.Host != "db.internal" || cfg.Port != 5433 {
		t.Fatalf("address = %s:%d", cfg.Host, cfg.Port)
	}
	if cfg.MaxOpenConns != 7 {
		t.Fatalf("MaxOpenConns = %d, want 7", cfg.MaxOpenConns)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   LogLevelDebug,
		"INFO":    LogLevelInfo,
		"warn":    LogLevelWarn,
		"warning": LogLevelWarn,
		"error":   LogLevelError,
		"":        LogLevelInfo,
		"bogus":   LogLevelInfo,
	}
	for in, want := range cases {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
