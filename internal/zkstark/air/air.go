// Package air implements the Algebraic Intermediate Representation layer:
// the boundary and transition constraints an execution trace must satisfy.
package air

import "github.com/vybium/zk-stark-engine/internal/zkstark/core"

// BoundaryConstraint pins the trace value at a fixed index.
type BoundaryConstraint struct {
	Index int
	Value *core.FieldElement
}

// AIR is the three-operation surface any transition relation must expose.
// A richer computation can be substituted without touching the rest of the
// engine as long as it implements this interface.
type AIR interface {
	// BoundaryConstraints returns the fixed (index, value) pairs the trace
	// must satisfy.
	BoundaryConstraints(trace []*core.FieldElement) []BoundaryConstraint

	// TransitionConstraint evaluates the transition relation between
	// adjacent trace cells at the given step; zero means satisfied.
	TransitionConstraint(cur, next *core.FieldElement, step int) *core.FieldElement

	// EvaluateAll reports whether every boundary and transition constraint
	// holds for the full trace.
	EvaluateAll(trace []*core.FieldElement) bool
}

// SuccessorAIR is the engine's one fixed computation: next = cur + 1 (mod p),
// with boundary constraints pinning trace[0] and trace[len-1].
type SuccessorAIR struct {
	field *core.Field
}

// NewSuccessorAIR builds the default successor AIR over field.
func NewSuccessorAIR(field *core.Field) *SuccessorAIR {
	return &SuccessorAIR{field: field}
}

// BoundaryConstraints pins index 0 to trace[0] and the last index to
// trace[len-1] — the public input/output boundary.
func (a *SuccessorAIR) BoundaryConstraints(trace []*core.FieldElement) []BoundaryConstraint {
	if len(trace) == 0 {
		return nil
	}
	return []BoundaryConstraint{
		{Index: 0, Value: trace[0]},
		{Index: len(trace) - 1, Value: trace[len(trace)-1]},
	}
}

// TransitionConstraint returns next - (cur + 1); zero exactly when the
// successor relation holds at this step.
func (a *SuccessorAIR) TransitionConstraint(cur, next *core.FieldElement, step int) *core.FieldElement {
	expected := cur.Add(a.field.One())
	return next.Sub(expected)
}

// EvaluateAll checks every boundary pin and every adjacent transition.
func (a *SuccessorAIR) EvaluateAll(trace []*core.FieldElement) bool {
	if len(trace) == 0 {
		return false
	}
	for _, bc := range a.BoundaryConstraints(trace) {
		if bc.Index < 0 || bc.Index >= len(trace) {
			return false
		}
		if !trace[bc.Index].Equal(bc.Value) {
			return false
		}
	}
	for i := 0; i < len(trace)-1; i++ {
		if !a.TransitionConstraint(trace[i], trace[i+1], i).IsZero() {
			return false
		}
	}
	return true
}

// BuildTrace constructs the length-T execution trace starting from seed by
// repeated application of the successor transition: trace[i+1] = trace[i]+1.
func BuildTrace(field *core.Field, seed *core.FieldElement, length int) []*core.FieldElement {
	trace := make([]*core.FieldElement, length)
	trace[0] = seed
	one := field.One()
	for i := 1; i < length; i++ {
		trace[i] = trace[i-1].Add(one)
	}
	return trace
}
