/*
DESCRIPTION
  curve.go provides evaluation of the current fit over a set of independent
  variable values.

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

package fit

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotList is matched by every InputTypeError.
var ErrNotList = errors.New("input is not a list: please remember to zip your lists")

// InputTypeError is returned by BuildCurve when values is not a list of
// numbers. A common cause is passing unzipped coordinate slices.
type InputTypeError struct {
	Type  reflect.Type // Type of the offending value, nil for untyped nil.
	Index int          // Index of the offending element, or -1 for the whole input.
}

func (e *InputTypeError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%v (element %d is %v)", ErrNotList, e.Index, e.Type)
	}
	return ErrNotList.Error()
}

// Is reports whether target is ErrNotList.
func (e *InputTypeError) Is(target error) bool { return target == ErrNotList }

// BuildCurve evaluates the params of the most recent result at each of the
// given values and returns the outputs in the same order. values must be a
// slice of a numeric type, or a []any holding only numbers.
//
// ErrNoResult is returned if no result has been recorded, an *InputTypeError
// if values is not a list of numbers, and ErrNoFitFunc if the record has no
// fit function. An error from the fit function is returned as is.
func (r *Record) BuildCurve(values any) ([]float64, error) {
	if _, err := r.Latest(); err != nil {
		return nil, err
	}
	x, err := toFloats(values)
	if err != nil {
		return nil, err
	}
	return r.Curve(x)
}

// Curve is the typed form of BuildCurve.
func (r *Record) Curve(values []float64) ([]float64, error) {
	res, err := r.Latest()
	if err != nil {
		return nil, err
	}
	if r.FitFunc == nil {
		return nil, ErrNoFitFunc
	}

	curve := make([]float64, len(values))
	for i, v := range values {
		curve[i], err = r.FitFunc.Eval([]float64{v}, res.Params, r.Consts)
		if err != nil {
			return nil, err
		}
	}
	return curve, nil
}

// toFloats converts a list of numbers to a []float64.
func toFloats(values any) ([]float64, error) {
	switch v := values.(type) {
	case []float64:
		return v, nil
	case []any:
		out := make([]float64, len(v))
		for i, e := range v {
			f, ok := toFloat(reflect.ValueOf(e))
			if !ok {
				return nil, &InputTypeError{Type: reflect.TypeOf(e), Index: i}
			}
			out[i] = f
		}
		return out, nil
	}

	rv := reflect.ValueOf(values)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, &InputTypeError{Type: reflect.TypeOf(values), Index: -1}
	}
	if !isNumber(rv.Type().Elem().Kind()) {
		return nil, &InputTypeError{Type: rv.Type(), Index: -1}
	}
	out := make([]float64, rv.Len())
	for i := range out {
		out[i], _ = toFloat(rv.Index(i))
	}
	return out, nil
}

// toFloat converts a numeric reflect.Value to float64.
func toFloat(v reflect.Value) (float64, bool) {
	if !v.IsValid() {
		return 0, false
	}
	switch k := v.Kind(); {
	case k == reflect.Float32 || k == reflect.Float64:
		return v.Float(), true
	case k >= reflect.Int && k <= reflect.Int64:
		return float64(v.Int()), true
	case k >= reflect.Uint && k <= reflect.Uintptr:
		return float64(v.Uint()), true
	}
	return 0, false
}

func isNumber(k reflect.Kind) bool {
	switch {
	case k == reflect.Float32 || k == reflect.Float64:
		return true
	case k >= reflect.Int && k <= reflect.Int64:
		return true
	case k >= reflect.Uint && k <= reflect.Uintptr:
		return true
	}
	return false
}
