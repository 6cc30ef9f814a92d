/*
DESCRIPTION
  ndfit loads a fit record file, reports its fit history and builds the
  curve of the most recent fit over a set of sample values. The curve is
  written to standard output as "x y" lines and optionally plotted.

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

// ndfit builds the curve of the most recent fit in a fit record file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ausocean/ndfit/curveplot"
	"github.com/ausocean/ndfit/fit"
	"github.com/ausocean/ndfit/model"
	"github.com/ausocean/ndfit/recordfile"
	"github.com/ausocean/ndfit/smartlogger"
	"github.com/ausocean/utils/logging"
)

const (
	progName    = "ndfit"
	version     = "v0.3.0"
	logSuppress = false
)

var (
	errNoValues = errors.New("no sample values: give -Values or a record with data")
	errNoRecord = errors.New("no record file given (-Record)")
)

func main() {
	configFile := flag.String("ConfigFile", "./ndfit.conf", "Specifies ndfit config file")
	recordPath := flag.String("Record", "", "Specifies the fit record YAML file (required)")
	values := flag.String("Values", "", "Comma-separated x values to evaluate (default spans the data)")
	samples := flag.Int("Samples", 0, "Number of values spanning the data when -Values is not given")
	plotDir := flag.String("PlotDir", "", "Directory for plots (overrides config)")
	verbosity := flag.String("Verbosity", "", "Log verbosity: Debug|Info|Warning|Error (overrides config)")
	flag.Parse()

	cfg, err := readConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", progName, err)
		os.Exit(1)
	}
	overrides := map[string]string{}
	if *plotDir != "" {
		overrides[keyPlotDir] = *plotDir
	}
	if *verbosity != "" {
		overrides[keyLogVerbosity] = *verbosity
	}
	if *samples != 0 {
		overrides[keySamples] = strconv.Itoa(*samples)
	}
	err = cfg.update(overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", progName, err)
		os.Exit(1)
	}

	err = checkRecordPath(*recordPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", progName, err)
		os.Exit(1)
	}

	sl := smartlogger.New(cfg.LogPath, progName)
	sl.SetKeepLogs(cfg.KeepLogs)
	log := logging.New(cfg.Verbosity, io.MultiWriter(sl, os.Stderr), logSuppress)
	log.Info(progName+" "+version, "config", *configFile)

	err = run(cfg, *recordPath, *values, os.Stdout, log)
	if err != nil {
		log.Error("could not build curve", "error", err)
	}

	log.Debug("rotating logs")
	if rerr := sl.Rotate(); rerr != nil {
		log.Warning("could not rotate logs", "error", rerr)
	}
	archived, aerr := sl.Archive()
	if aerr != nil {
		log.Warning("could not archive logs", "error", aerr)
	}
	log.Debug("archived logs", "files", strings.Join(archived, ","))
	if cerr := sl.Close(); cerr != nil {
		fmt.Fprintf(os.Stderr, "%s: could not close log: %v\n", progName, cerr)
	}

	if err != nil {
		os.Exit(1)
	}
}

// checkRecordPath returns errNoRecord, listing the known models, when no
// record file was given.
func checkRecordPath(path string) error {
	if path == "" {
		return fmt.Errorf("%w; models: %s", errNoRecord, strings.Join(model.Names(), ","))
	}
	return nil
}

// run loads the record at recordPath, logs its history and writes the curve
// over the requested values to w.
func run(cfg config, recordPath, values string, w io.Writer, log logging.Logger) error {
	log.Debug("loading record", "path", recordPath)
	f, err := recordfile.Load(recordPath)
	if err != nil {
		return err
	}
	r, err := f.Record()
	if err != nil {
		return err
	}

	history := r.EntropyHistory()
	log.Info("loaded record", "model", f.Model, "points", len(r.Data), "results", len(history))
	if len(history) > 0 {
		log.Info("entropy history",
			"mean", stat.Mean(history, nil),
			"min", floats.Min(history),
			"last", history[len(history)-1],
		)
	}

	latest, err := r.Latest()
	if err != nil {
		return fmt.Errorf("could not get latest result: %w", err)
	}
	log.Info("latest result", "entropy", latest.Entropy, "params", fmt.Sprint(latest.Params))

	dataX, dataY := f.XY()
	x, err := sampleValues(values, dataX, cfg.Samples)
	if err != nil {
		return err
	}

	curve, err := r.Curve(x)
	if err != nil {
		return fmt.Errorf("could not evaluate fit: %w", err)
	}
	for i := range x {
		fmt.Fprintf(w, "%g %g\n", x[i], curve[i])
	}
	log.Debug("built curve", "values", len(curve))

	if cfg.PlotDir == "" {
		return nil
	}
	return plot(cfg.PlotDir, recordPath, r, dataX, dataY, x, curve, log)
}

// plot writes the curve and entropy plots for the record into dir.
func plot(dir, recordPath string, r *fit.Record, dataX, dataY, x, curve []float64, log logging.Logger) error {
	err := os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return fmt.Errorf("could not create plot dir: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(recordPath), filepath.Ext(recordPath))
	err = curveplot.Curve(dir, name, dataX, dataY, x, curve)
	if err != nil {
		return err
	}
	log.Info("plotted curve", "dir", dir, "name", name)

	history := r.EntropyHistory()
	if len(history) == 0 {
		return nil
	}
	err = curveplot.Entropy(dir, name, history)
	if err != nil {
		return err
	}
	log.Info("plotted entropy history", "dir", dir, "name", name)
	return nil
}

// sampleValues returns the x values to evaluate. An explicit comma-separated
// list takes priority, otherwise n evenly spaced values spanning dataX are
// returned.
func sampleValues(list string, dataX []float64, n int) ([]float64, error) {
	if list != "" {
		var x []float64
		for _, s := range strings.Split(list, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("could not parse value %q: %w", s, err)
			}
			x = append(x, v)
		}
		if len(x) == 0 {
			return nil, errNoValues
		}
		return x, nil
	}

	if len(dataX) == 0 || n < 1 {
		return nil, errNoValues
	}
	lo, hi := floats.Min(dataX), floats.Max(dataX)
	if n == 1 || lo == hi {
		return []float64{lo}, nil
	}
	return floats.Span(make([]float64, n), lo, hi), nil
}
