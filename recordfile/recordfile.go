/*
DESCRIPTION
  recordfile.go provides reading and writing of fit records as YAML files.

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

// Package recordfile reads and writes the serialisable state of a fit.Record
// as YAML. The fit function is stored by model name; the error function is
// never stored.
package recordfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ausocean/ndfit/fit"
	"github.com/ausocean/ndfit/model"
)

// ErrData is returned by FromRecord when a data entry is not a []float64.
var ErrData = errors.New("data entry is not a coordinate list")

// File is the on disk form of a fit record.
type File struct {
	Model   string      `yaml:"model,omitempty"`
	Data    [][]float64 `yaml:"data"`
	Consts  []float64   `yaml:"consts"`
	Results []Result    `yaml:"results"`
	Lattice any         `yaml:"lattice,omitempty"`
}

// Result is the on disk form of a fit.Result.
type Result struct {
	Entropy float64   `yaml:"entropy"`
	Params  []float64 `yaml:"params,flow"`
}

// Load reads a File from the YAML file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open record file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a File from r.
func Read(r io.Reader) (*File, error) {
	var f File
	err := yaml.NewDecoder(r).Decode(&f)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not decode record: %w", err)
	}
	return &f, nil
}

// Save writes f to the file at path, replacing any existing file.
func Save(path string, f *File) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create record file: %w", err)
	}
	err = Write(out, f)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Write encodes f to w.
func Write(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err := enc.Encode(f)
	if err != nil {
		return fmt.Errorf("could not encode record: %w", err)
	}
	return enc.Close()
}

// Record returns a fit.Record initialised from f. The fit function is looked
// up by model name and left nil when no model is named.
func (f *File) Record() (*fit.Record, error) {
	var fitFunc fit.FitFunc
	if f.Model != "" {
		var err error
		fitFunc, err = model.Lookup(f.Model)
		if err != nil {
			return nil, fmt.Errorf("could not resolve fit function: %w", err)
		}
	}

	data := make([]any, len(f.Data))
	for i, d := range f.Data {
		data[i] = d
	}
	results := make([]fit.Result, len(f.Results))
	for i, res := range f.Results {
		results[i] = fit.Result{Entropy: res.Entropy, Params: res.Params}
	}
	consts := f.Consts
	if consts == nil {
		consts = []float64{}
	}

	r := fit.New()
	r.Init(data, results, consts, fitFunc, nil, f.Lattice)
	return r, nil
}

// FromRecord returns the File form of r, naming its fit function modelName.
// Every data entry of r must be a []float64.
func FromRecord(modelName string, r *fit.Record) (*File, error) {
	f := &File{
		Model:   modelName,
		Data:    make([][]float64, len(r.Data)),
		Consts:  r.Consts,
		Results: make([]Result, len(r.Results)),
		Lattice: r.Lattice,
	}
	for i, d := range r.Data {
		pt, ok := d.([]float64)
		if !ok {
			return nil, fmt.Errorf("%w: entry %d is %T", ErrData, i, d)
		}
		f.Data[i] = pt
	}
	for i, res := range r.Results {
		f.Results[i] = Result{Entropy: res.Entropy, Params: res.Params}
	}
	return f, nil
}

// XY splits the data of f into x and y slices using the first two
// coordinates of each point. Points with fewer than two coordinates are
// skipped.
func (f *File) XY() (x, y []float64) {
	for _, pt := range f.Data {
		if len(pt) < 2 {
			continue
		}
		x = append(x, pt[0])
		y = append(y, pt[1])
	}
	return x, y
}
