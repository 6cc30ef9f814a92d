/*
DESCRIPTION
  main_test.go provides testing of functionality in main.go and config.go.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean)

  It is free software: you can redistribute it and/or modify them
  under the terms of the GNU General Public License as published by the
  Free Software Foundation, either version 3 of the License, or (at your
  option) any later version.

  It is distributed in the hope that it will be useful, but WITHOUT
  ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
  FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License
  for more details.

  You should have received a copy of the GNU General Public License
  in gpl.txt. If not, see http://www.gnu.org/licenses.
*/

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/ndfit/fit"
	"github.com/ausocean/utils/logging"
)

const testRecord = `model: poly
data:
  - [0, 2]
  - [1, 3]
  - [2, 4]
results:
  - entropy: 0.9
    params: [0]
  - entropy: 0.5
    params: [2, 1]
`

func testLogger() logging.Logger {
	return logging.New(int8(logging.Debug), io.Discard, true)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		t.Fatalf("could not write %s: %v", name, err)
	}
	return path
}

func TestSampleValues(t *testing.T) {
	tests := []struct {
		list    string
		dataX   []float64
		n       int
		want    []float64
		wantErr bool
	}{
		{list: "0, 1.5,3", want: []float64{0, 1.5, 3}},
		{list: "1,,2,", want: []float64{1, 2}},
		{list: "1,x", wantErr: true},
		{list: ",", wantErr: true},
		{dataX: []float64{4, 0, 2}, n: 5, want: []float64{0, 1, 2, 3, 4}},
		{dataX: []float64{3, 3}, n: 5, want: []float64{3}},
		{dataX: []float64{1, 2}, n: 1, want: []float64{1}},
		{dataX: nil, n: 5, wantErr: true},
	}

	for i, test := range tests {
		got, err := sampleValues(test.list, test.dataX, test.n)
		if test.wantErr {
			if err == nil {
				t.Errorf("expected error for test: %d", i)
			}
			continue
		}
		if err != nil {
			t.Errorf("unexpected error for test: %d: %v", i, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("did not get expected values for test: %d (-want +got):\n%s", i, diff)
		}
	}
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := readConfig(filepath.Join(dir, "missing.conf"))
	if err != nil {
		t.Fatalf("unexpected error for missing config: %v", err)
	}
	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("did not get default config (-want +got):\n%s", diff)
	}

	path := writeFile(t, dir, "ndfit.conf", "LogPath /tmp/ndfit\nLogVerbosity Debug\nPlotDir plots\nSamples 7\nKeepLogs true\n")
	cfg, err = readConfig(path)
	if err != nil {
		t.Fatalf("could not read config: %v", err)
	}
	want := config{LogPath: "/tmp/ndfit", Verbosity: int8(logging.Debug), PlotDir: "plots", Samples: 7, KeepLogs: true}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("did not get expected config (-want +got):\n%s", diff)
	}
}

func TestConfigUpdateErrors(t *testing.T) {
	tests := []map[string]string{
		{"Colour": "blue"},
		{keyLogVerbosity: "Loud"},
		{keySamples: "0"},
		{keySamples: "many"},
		{keyKeepLogs: "maybe"},
	}
	for i, test := range tests {
		c := defaultConfig()
		if err := c.update(test); err == nil {
			t.Errorf("expected error for test: %d", i)
		}
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "line.yaml", testRecord)

	cfg := defaultConfig()
	cfg.PlotDir = filepath.Join(dir, "plots")

	var out bytes.Buffer
	err := run(cfg, path, "0,1,2", &out, testLogger())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if diff := cmp.Diff("0 2\n1 3\n2 4\n", out.String()); diff != "" {
		t.Errorf("did not get expected output (-want +got):\n%s", diff)
	}

	for _, name := range []string{"line.png", "line-entropy.png"} {
		if _, err := os.Stat(filepath.Join(cfg.PlotDir, name)); err != nil {
			t.Errorf("missing plot %s: %v", name, err)
		}
	}
}

func TestRunSpan(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "line.yaml", testRecord)

	cfg := defaultConfig()
	cfg.Samples = 3

	var out bytes.Buffer
	err := run(cfg, path, "", &out, testLogger())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if diff := cmp.Diff("0 2\n1 3\n2 4\n", out.String()); diff != "" {
		t.Errorf("did not get expected output (-want +got):\n%s", diff)
	}
}

func TestRunNoResult(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.yaml", "model: poly\ndata: [[0, 1]]\n")

	err := run(defaultConfig(), path, "1", io.Discard, testLogger())
	if !errors.Is(err, fit.ErrNoResult) {
		t.Errorf("did not get expected error. Got: %v, Want: %v", err, fit.ErrNoResult)
	}
}

func TestRunNoModel(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "nomodel.yaml", "results:\n  - entropy: 1\n    params: [1]\n")

	err := run(defaultConfig(), path, "1", io.Discard, testLogger())
	if !errors.Is(err, fit.ErrNoFitFunc) {
		t.Errorf("did not get expected error. Got: %v, Want: %v", err, fit.ErrNoFitFunc)
	}
}

func TestCheckRecordPath(t *testing.T) {
	err := checkRecordPath("")
	if !errors.Is(err, errNoRecord) {
		t.Errorf("did not get expected error. Got: %v, Want: %v", err, errNoRecord)
	}
	if err != nil && !strings.Contains(err.Error(), "poly") {
		t.Errorf("did not get model names in error: %v", err)
	}

	err = checkRecordPath("line.yaml")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
