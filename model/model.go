/*
DESCRIPTION
  model.go provides named model functions that can be used as the fit
  function of a fit record.

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

// Package model provides one dimensional model functions for use as the fit
// function of a fit.Record. Models only evaluate; finding their params is
// left to an external optimizer.
package model

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/ausocean/ndfit/fit"
)

// Model errors.
var (
	ErrParams       = errors.New("wrong number of params")
	ErrPoint        = errors.New("point has no coordinates")
	ErrUnknownModel = errors.New("unknown model")
	ErrNaN          = errors.New("params contain NaN")
)

// Func is a one dimensional model. Any consts are applied by Eval.
type Func func(x float64, params []float64) (float64, error)

// Eval implements fit.FitFunc. The model is evaluated at point[0] and
// consts[0], if present, is added as a fixed offset.
func (f Func) Eval(point, params, consts []float64) (float64, error) {
	if len(point) == 0 {
		return math.NaN(), ErrPoint
	}
	if floats.HasNaN(params) {
		return math.NaN(), ErrNaN
	}
	y, err := f(point[0], params)
	if err != nil {
		return math.NaN(), err
	}
	if len(consts) > 0 {
		y += consts[0]
	}
	return y, nil
}

// Polynomial evaluates sum(p[j] * x^j) with params as ascending coefficients.
func Polynomial(x float64, p []float64) (float64, error) {
	if len(p) == 0 {
		return math.NaN(), fmt.Errorf("%w: polynomial needs at least 1, got 0", ErrParams)
	}
	var y float64
	for j := len(p) - 1; j >= 0; j-- {
		y += p[j] * math.Pow(x, float64(j))
	}
	return y, nil
}

// Exponential evaluates p0*exp(p1*x) + p2. p2 is optional.
func Exponential(x float64, p []float64) (float64, error) {
	if err := checkParams("exponential", p, 2, 3); err != nil {
		return math.NaN(), err
	}
	y := p[0] * math.Exp(p[1]*x)
	if len(p) == 3 {
		y += p[2]
	}
	return y, nil
}

// Gaussian evaluates p0*exp(-(x-p1)^2/(2*p2^2)).
func Gaussian(x float64, p []float64) (float64, error) {
	if err := checkParams("gaussian", p, 3, 3); err != nil {
		return math.NaN(), err
	}
	d := x - p[1]
	return p[0] * math.Exp(-d*d/(2*p[2]*p[2])), nil
}

// PowerLaw evaluates p0*x^p1.
func PowerLaw(x float64, p []float64) (float64, error) {
	if err := checkParams("power law", p, 2, 2); err != nil {
		return math.NaN(), err
	}
	return p[0] * math.Pow(x, p[1]), nil
}

// Logistic evaluates p0/(1+exp(-p1*(x-p2))).
func Logistic(x float64, p []float64) (float64, error) {
	if err := checkParams("logistic", p, 3, 3); err != nil {
		return math.NaN(), err
	}
	return p[0] / (1 + math.Exp(-p[1]*(x-p[2]))), nil
}

func checkParams(name string, p []float64, min, max int) error {
	if len(p) < min || len(p) > max {
		if min == max {
			return fmt.Errorf("%w: %s needs %d, got %d", ErrParams, name, min, len(p))
		}
		return fmt.Errorf("%w: %s needs %d to %d, got %d", ErrParams, name, min, max, len(p))
	}
	return nil
}

var models = map[string]Func{
	"poly":     Polynomial,
	"exp":      Exponential,
	"gauss":    Gaussian,
	"power":    PowerLaw,
	"logistic": Logistic,
}

// Lookup returns the named model as a fit.FitFunc.
func Lookup(name string) (fit.FitFunc, error) {
	f, ok := models[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	return f, nil
}

// Names returns the names of the available models in sorted order.
func Names() []string {
	names := make([]string, 0, len(models))
	for n := range models {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
