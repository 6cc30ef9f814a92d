/*
DESCRIPTION
  recordfile_test.go provides testing for functionality in recordfile.go.

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

package recordfile

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/ndfit/fit"
	"github.com/ausocean/ndfit/model"
)

const sampleRecord = `
model: poly
data:
  - [0, 2]
  - [1, 3]
  - [2, 4]
consts: []
results:
  - entropy: 0.9
    params: [0, 0]
  - entropy: 0.5
    params: [2, 1]
lattice:
  step: 0.5
`

// TestReadRecord checks a YAML record decodes into a usable fit.Record.
func TestReadRecord(t *testing.T) {
	f, err := Read(strings.NewReader(sampleRecord))
	if err != nil {
		t.Fatalf("could not read record: %v", err)
	}

	r, err := f.Record()
	if err != nil {
		t.Fatalf("could not make record: %v", err)
	}

	if diff := cmp.Diff([]float64{0.9, 0.5}, r.EntropyHistory()); diff != "" {
		t.Errorf("did not get expected history (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"step": 0.5}, r.Lattice); diff != "" {
		t.Errorf("did not get expected lattice (-want +got):\n%s", diff)
	}

	curve, err := r.Curve([]float64{0, 1, 2})
	if err != nil {
		t.Fatalf("could not build curve: %v", err)
	}
	if diff := cmp.Diff([]float64{2, 3, 4}, curve); diff != "" {
		t.Errorf("did not get expected curve (-want +got):\n%s", diff)
	}

	x, y := f.XY()
	if diff := cmp.Diff([]float64{0, 1, 2}, x); diff != "" {
		t.Errorf("did not get expected x (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{2, 3, 4}, y); diff != "" {
		t.Errorf("did not get expected y (-want +got):\n%s", diff)
	}
}

// TestReadEmpty checks an empty document gives an empty record with no fit
// function.
func TestReadEmpty(t *testing.T) {
	f, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("could not read record: %v", err)
	}
	r, err := f.Record()
	if err != nil {
		t.Fatalf("could not make record: %v", err)
	}
	if r.FitFunc != nil {
		t.Errorf("expected no fit function")
	}
	if _, err := r.Latest(); !errors.Is(err, fit.ErrNoResult) {
		t.Errorf("did not get expected error. Got: %v, Want: %v", err, fit.ErrNoResult)
	}
}

// TestUnknownModel checks an unknown model name is rejected.
func TestUnknownModel(t *testing.T) {
	f, err := Read(strings.NewReader("model: spline\n"))
	if err != nil {
		t.Fatalf("could not read record: %v", err)
	}
	if _, err := f.Record(); !errors.Is(err, model.ErrUnknownModel) {
		t.Errorf("did not get expected error. Got: %v, Want: %v", err, model.ErrUnknownModel)
	}
}

// TestSaveLoad checks a record written with Save is read back by Load.
func TestSaveLoad(t *testing.T) {
	fn, err := model.Lookup("exp")
	if err != nil {
		t.Fatalf("could not look up model: %v", err)
	}
	r := fit.New()
	r.Init([]any{[]float64{0, 1}, []float64{1, 2.7}}, nil, []float64{0.25}, fn, nil, nil)
	r.AddResult(0.4, 1, 1)

	f, err := FromRecord("exp", r)
	if err != nil {
		t.Fatalf("could not convert record: %v", err)
	}

	path := filepath.Join(t.TempDir(), "record.yaml")
	err = Save(path, f)
	if err != nil {
		t.Fatalf("could not save record: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("could not load record: %v", err)
	}
	if diff := cmp.Diff(f, got); diff != "" {
		t.Errorf("did not get expected file (-want +got):\n%s", diff)
	}
}

// TestFromRecordBadData checks opaque data that is not a coordinate list is
// rejected.
func TestFromRecordBadData(t *testing.T) {
	r := fit.New()
	r.Data = []any{"not a point"}
	if _, err := FromRecord("", r); !errors.Is(err, ErrData) {
		t.Errorf("did not get expected error. Got: %v, Want: %v", err, ErrData)
	}
}
