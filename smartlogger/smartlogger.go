/*
NAME
  smartlogger - smartlogger implements log file rotation and archiving of
  rotated log files.

LICENSE
  smartlogger is Copyright (C) 2017-2026 the Australian Ocean Lab (AusOcean).

  It is free software: you can redistribute it and/or modify them
  under the terms of the GNU General Public License as published by the
  Free Software Foundation, either version 3 of the License, or (at your
  option) any later version.

  It is distributed in the hope that it will be useful, but WITHOUT
  ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
  FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License
  for more details.

  You should have received a copy of the GNU General Public License
  in gpl.txt.  If not, see [GNU licenses](http://www.gnu.org/licenses).
*/

// Package smartlogger provides a rotating log file that can archive or
// remove its rotated backups.
package smartlogger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits.
const (
	maxSize    = 500 // MB.
	maxBackups = 10
	maxAge     = 28 // Days.
)

const backupDir = "backups"

// Smartlogger is an io.Writer that writes to a rotating log file.
type Smartlogger struct {
	path      string
	name      string
	LogRoller lumberjack.Logger
	keepLogs  bool
}

// New returns a new Smartlogger writing to path/name.log.
func New(path, name string) *Smartlogger {
	return &Smartlogger{
		path: path,
		name: name,
		LogRoller: lumberjack.Logger{
			Filename:   filepath.Join(path, name+".log"),
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
			MaxAge:     maxAge,
		},
	}
}

// Write implements io.Writer.
func (s *Smartlogger) Write(p []byte) (int, error) {
	return s.LogRoller.Write(p)
}

// Rotate closes the current log file and dates it, followed by opening a new log file.
func (s *Smartlogger) Rotate() error {
	return s.LogRoller.Rotate()
}

// Close closes the current log file.
func (s *Smartlogger) Close() error {
	return s.LogRoller.Close()
}

// SetKeepLogs sets whether Archive keeps rotated logs in the backups
// directory or deletes them.
func (s *Smartlogger) SetKeepLogs(kl bool) {
	s.keepLogs = kl
}

// Archive moves every rotated log file into the backups directory when
// keeping logs, otherwise it deletes them. The base names of the handled
// files are returned. A call to Archive should be preceded by a call to
// Rotate if the most recent log messages are to be archived.
func (s *Smartlogger) Archive() ([]string, error) {
	logFiles, err := filepath.Glob(filepath.Join(s.path, s.name+"-*"))
	if err != nil {
		return nil, fmt.Errorf("could not glob log files: %w", err)
	}

	if s.keepLogs {
		err = os.MkdirAll(filepath.Join(s.path, backupDir), os.ModePerm)
		if err != nil {
			return nil, fmt.Errorf("could not create backup dir: %w", err)
		}
	}

	var done []string
	for _, ff := range logFiles {
		// ff is a full file name; we need the local (base) file name too.
		lf := filepath.Base(ff)
		if !strings.HasSuffix(lf, ".log") {
			continue
		}
		if s.keepLogs {
			err = os.Rename(ff, filepath.Join(s.path, backupDir, lf))
		} else {
			err = os.Remove(ff)
		}
		if err != nil {
			return done, fmt.Errorf("could not archive log file %s: %w", lf, err)
		}
		done = append(done, lf)
	}
	return done, nil
}
