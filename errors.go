package alchemy

import (
	"fmt"

	"github.com/pkg/errors"
)

// DiagnosticKind tags a non-fatal condition surfaced to the caller while the
// region finder keeps running. None of these halt the pipeline; they
// describe input the engine chose to drop or a tie it had to break.
type DiagnosticKind uint

const (
	// DiagDegenerateCurve marks a zero-length input curve, silently removed
	// by the dangling-segment pass.
	DiagDegenerateCurve DiagnosticKind = iota
	// DiagOffPlaneCurve marks a curve dropped by planarization because an
	// endpoint's |z| exceeds EPS after the inverse work-plane transform.
	DiagOffPlaneCurve
	// DiagOpenRegion marks a traversal that could not close back to its
	// start edge; the partial region is dropped.
	DiagOpenRegion
	// DiagNumericallyAmbiguous marks an intersection or clockwise test that
	// landed within EPS of a tie, resolved by a deterministic tie-break.
	DiagNumericallyAmbiguous
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagDegenerateCurve:
		return "DegenerateCurve"
	case DiagOffPlaneCurve:
		return "OffPlaneCurve"
	case DiagOpenRegion:
		return "OpenRegion"
	case DiagNumericallyAmbiguous:
		return "NumericallyAmbiguous"
	default:
		return "Unknown"
	}
}

// Diagnostic is a single non-fatal observation from a region computation.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
}

func (d Diagnostic) String() string { return fmt.Sprintf("%s: %s", d.Kind, d.Message) }

// PipelineError reports catastrophic geometry that prevents a region
// computation from producing any result at all: a singular work-plane
// transform, or a panic recovered from the region computation. Ordinary
// per-curve problems (degenerate input, off-plane curves, unclosed
// traversals) are not errors; they are collected as Diagnostics instead.
type PipelineError struct {
	cause error
}

func newPipelineError(format string, args ...interface{}) *PipelineError {
	return &PipelineError{cause: errors.Errorf(format, args...)}
}

func wrapPipelineError(err error, msg string) *PipelineError {
	return &PipelineError{cause: errors.Wrap(err, msg)}
}

func (e *PipelineError) Error() string { return e.cause.Error() }
func (e *PipelineError) Unwrap() error { return e.cause }
