/*
DESCRIPTION
  config.go provides reading of the ndfit config file.

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
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ausocean/utils/filemap"
	"github.com/ausocean/utils/logging"
	"github.com/ausocean/utils/sliceutils"
)

// Config keys.
const (
	keyLogPath      = "LogPath"
	keyLogVerbosity = "LogVerbosity"
	keyPlotDir      = "PlotDir"
	keySamples      = "Samples"
	keyKeepLogs     = "KeepLogs"
)

var configKeys = []string{keyLogPath, keyLogVerbosity, keyPlotDir, keySamples, keyKeepLogs}

// Config defaults.
const (
	defaultLogPath   = "/var/log/ndfit"
	defaultVerbosity = "Info"
	defaultSamples   = 50
)

var verbosities = map[string]int8{
	"Debug":   int8(logging.Debug),
	"Info":    int8(logging.Info),
	"Warning": int8(logging.Warning),
	"Error":   int8(logging.Error),
}

// config holds ndfit settings.
type config struct {
	LogPath   string
	Verbosity int8
	PlotDir   string // Empty disables plotting.
	Samples   int
	KeepLogs  bool
}

func defaultConfig() config {
	return config{
		LogPath:   defaultLogPath,
		Verbosity: verbosities[defaultVerbosity],
		Samples:   defaultSamples,
	}
}

// readConfig reads the config file at path, which holds one "key value" pair
// per line. A missing file gives the default config.
func readConfig(path string) (config, error) {
	c := defaultConfig()
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	m, err := filemap.ReadFrom(path, "\n", " ")
	if err != nil {
		return c, fmt.Errorf("could not read config file: %w", err)
	}
	err = c.update(m)
	return c, err
}

// update applies the given key/value settings to c.
func (c *config) update(m map[string]string) error {
	for k, v := range m {
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" {
			continue
		}
		if !sliceutils.ContainsString(configKeys, k) {
			return fmt.Errorf("unknown config key: %s", k)
		}

		switch k {
		case keyLogPath:
			c.LogPath = v
		case keyLogVerbosity:
			l, ok := verbosities[v]
			if !ok {
				return fmt.Errorf("invalid %s: %s", k, v)
			}
			c.Verbosity = l
		case keyPlotDir:
			c.PlotDir = v
		case keySamples:
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return fmt.Errorf("invalid %s: %s", k, v)
			}
			c.Samples = n
		case keyKeepLogs:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", k, err)
			}
			c.KeepLogs = b
		}
	}
	return nil
}
