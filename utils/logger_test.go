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

package utils

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"trace":   logrus.TraceLevel,
		"debug":   logrus.DebugLevel,
		"":        logrus.InfoLevel,
		"INFO":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"fatal":   logrus.FatalLevel,
		"panic":   logrus.PanicLevel,
		"nope":    logrus.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetLoggerLevel(t *testing.T) {
	l := NewLogger("LEVELTEST")
	if !SetLoggerLevel("LEVELTEST", "error") {
		t.Fatal("registered logger not found")
	}
	if l.GetLevel() != logrus.ErrorLevel {
		t.Fatalf("level = %v, want error", l.GetLevel())
	}
	if SetLoggerLevel("NOBODY", "debug") {
		t.Fatal("unknown logger name should report false")
	}
}

func TestColorFormatterCarriesFields(t *testing.T) {
	f := &ColorLogFormatter{LoggerName: "FMT", NameWidth: 10}
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Level:   logrus.InfoLevel,
		Message: "listing failed",
		Data:    logrus.Fields{"table": "users", "kind": "no such table"},
	}
	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	line := string(out)
	if !strings.Contains(line, "listing failed") {
		t.Fatalf("message missing from %q", line)
	}
	if !strings.Contains(line, "kind=no such table") || !strings.Contains(line, "table=users") {
		t.Fatalf("fields missing from %q", line)
	}
}

func TestJSONFormatter(t *testing.T) {
	f := &JSONLogFormatter{LoggerName: "FMT"}
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Level:   logrus.WarnLevel,
		Message: "slow query",
	}
	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	line := string(out)
	if !strings.Contains(line, `"level":"warning"`) || !strings.Contains(line, `"message":"slow query"`) {
		t.Fatalf("unexpected line %q", line)
	}
}
