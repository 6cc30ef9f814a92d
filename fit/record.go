/*
DESCRIPTION
  record.go provides the fit record type (Record) which holds the state of a
  single curve fitting session: the input data, the history of fit results
  and their entropy scores, constant parameters, the model and error
  functions and a lattice used by external error checking.

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

// Package fit provides a fit record type (Record) for storing the state of a
// curve fitting session. The record holds a history of (entropy, params)
// results appended by an external optimizer, and can evaluate the parameters
// of the most recent result over a set of independent variable values to
// build the fitted curve.
//
// A Record is not safe for concurrent use. Callers that share a record
// between goroutines must serialise access themselves.
package fit

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by Record operations.
var (
	ErrNoResult  = errors.New("no result recorded")
	ErrNoFitFunc = errors.New("no fit function configured")
	ErrArgs      = errors.New("invalid init arguments")
)

// initArgCount is the number of positional values accepted by InitArgs.
const initArgCount = 6

// FitFunc is a model function. Eval returns the model value at point for
// the given fitted params and constant parameters.
type FitFunc interface {
	Eval(point, params, consts []float64) (float64, error)
}

// FitFuncOf adapts an ordinary function to a FitFunc.
type FitFuncOf func(point, params, consts []float64) (float64, error)

// Eval calls f(point, params, consts). A nil f gives ErrNoFitFunc.
func (f FitFuncOf) Eval(point, params, consts []float64) (float64, error) {
	if f == nil {
		return math.NaN(), ErrNoFitFunc
	}
	return f(point, params, consts)
}

// ErrFunc is a residual function used by an external optimizer to score
// params against data. Record stores it but never calls it.
type ErrFunc func(data []any, params, consts []float64) (float64, error)

// Result is a single fit attempt.
type Result struct {
	Entropy float64   // Quality score of the attempt.
	Params  []float64 // Fitted coefficients.
}

// Record holds the state of a curve fitting session.
type Record struct {
	Data    []any     // Raw input data, opaque to Record.
	Results []Result  // Fit history, the last entry is the current fit.
	Consts  []float64 // Constant parameters passed to FitFunc and ErrFunc.
	FitFunc FitFunc   // Model function, or nil.
	ErrFunc ErrFunc   // Error function, or nil.
	Lattice any       // Lattice for external error checking, or nil.
}

// New returns a new empty Record.
func New() *Record {
	return &Record{
		Data:    []any{},
		Results: []Result{},
		Consts:  []float64{},
	}
}

// Init replaces all fields of the record.
func (r *Record) Init(data []any, results []Result, consts []float64, fitFunc FitFunc, errFunc ErrFunc, lattice any) {
	r.Data = data
	r.Results = results
	r.Consts = consts
	r.FitFunc = fitFunc
	r.ErrFunc = errFunc
	r.Lattice = lattice
}

// InitArgs initialises the record from exactly six positional values in the
// order data, results, consts, fitfunc, errfunc, lattice. Nil is accepted for
// fitfunc, errfunc and lattice. On error the record is left unchanged.
func (r *Record) InitArgs(args ...any) error {
	if len(args) != initArgCount {
		return fmt.Errorf("%w: got %d values, want %d", ErrArgs, len(args), initArgCount)
	}

	data, ok := args[0].([]any)
	if !ok {
		return fmt.Errorf("%w: data is %T, want []any", ErrArgs, args[0])
	}
	results, ok := args[1].([]Result)
	if !ok {
		return fmt.Errorf("%w: results is %T, want []fit.Result", ErrArgs, args[1])
	}
	consts, ok := args[2].([]float64)
	if !ok {
		return fmt.Errorf("%w: consts is %T, want []float64", ErrArgs, args[2])
	}

	var fitFunc FitFunc
	switch f := args[3].(type) {
	case nil:
	case FitFuncOf:
		if f != nil {
			fitFunc = f
		}
	case FitFunc:
		fitFunc = f
	case func(point, params, consts []float64) (float64, error):
		if f != nil {
			fitFunc = FitFuncOf(f)
		}
	default:
		return fmt.Errorf("%w: fitfunc is %T", ErrArgs, args[3])
	}

	var errFunc ErrFunc
	switch f := args[4].(type) {
	case nil:
	case ErrFunc:
		errFunc = f
	case func(data []any, params, consts []float64) (float64, error):
		errFunc = f
	default:
		return fmt.Errorf("%w: errfunc is %T", ErrArgs, args[4])
	}

	r.Init(data, results, consts, fitFunc, errFunc, args[5])
	return nil
}

// AddResult appends a fit attempt to the history.
func (r *Record) AddResult(entropy float64, params ...float64) {
	r.Results = append(r.Results, Result{Entropy: entropy, Params: params})
}

// Latest returns the most recent result. ErrNoResult is returned if no result
// has been recorded.
func (r *Record) Latest() (Result, error) {
	if len(r.Results) == 0 {
		return Result{}, ErrNoResult
	}
	return r.Results[len(r.Results)-1], nil
}

// EntropyHistory returns the entropy of every result in the order they were
// recorded.
func (r *Record) EntropyHistory() []float64 {
	h := make([]float64, len(r.Results))
	for i, res := range r.Results {
		h[i] = res.Entropy
	}
	return h
}
