// Copyright 2025 The NEURAX Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package perf provides the public API for wall-clock measurement sessions.
//
// A Session is an explicit value owned by the caller; any number may run
// concurrently or nested. Ending a session that was never started fails
// rather than reporting stale data.
//
// Example:
//
//	var s perf.Session
//	s.Start()
//	// ... engine calls ...
//	if err := s.End(); err != nil {
//	    return err
//	}
//	fmt.Println(s.Report())
package perf

import (
	"github.com/Cetic99/neurax/internal/perf"
)

// Session accumulates timing for one measurement window.
type Session = perf.Session
