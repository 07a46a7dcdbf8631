/*
Package tracing is a thin layer over schuko's tracing, used by all packages of
this module.

All packages trace to key "amu", or to a sub-key "amu.<package>" selected by
their tracer() function. Tests redirect the traces to the testing log by
calling SetTestingLog at their start; command line tools send them to a
writer with SetLogOutput.
*/
package tracing

import (
	"io"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Key is the trace selector key for this module.
const Key = "amu"

// Trace is schuko's tracer interface.
type Trace = tracing.Trace

// Select returns the module tracer or a sub-tracer for key "amu.<sub>".
func Select(sub string) Trace {
	if sub == "" {
		return tracing.Select(Key)
	}
	return tracing.Select(Key + "." + sub)
}

// Debugf traces on level debug to the module tracer.
func Debugf(msg string, args ...interface{}) {
	tracing.Select(Key).Debugf(msg, args...)
}

// Infof traces on level info to the module tracer.
func Infof(msg string, args ...interface{}) {
	tracing.Select(Key).Infof(msg, args...)
}

// Errorf traces on level error to the module tracer.
func Errorf(msg string, args ...interface{}) {
	tracing.Select(Key).Errorf(msg, args...)
}

// SetLogOutput routes all tracing output of this module to w, using a Go
// logger. level is one of "error", "info" or "debug". It returns a teardown
// function which switches tracing off again.
func SetLogOutput(w io.Writer, level string) func() {
	tracer := gologadapter.New()
	tracer.SetOutput(w)
	tracer.SetTraceLevel(tracing.TraceLevelFromString(level))
	selectAll(tracer)
	return reset
}

// SetTestingLog routes all tracing output of this module to t.Log, on level
// debug. It returns a teardown function which switches tracing off again.
func SetTestingLog(t *testing.T) func() {
	tracer := gotestingadapter.New(t)
	tracer.SetTraceLevel(tracing.LevelDebug)
	selectAll(tracer)
	return reset
}

func selectAll(tracer Trace) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return tracer
	}))
}

func reset() {
	tracing.SetTraceSelector(nil)
}
