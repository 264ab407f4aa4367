package scene

import (
	"fmt"
	"strings"
)

// Resolution errors. All are fatal to the current pass: a partially
// resolved scene graph is not a meaningful artifact, so the caller retries
// the whole pass (different seed, corrected document) rather than patching
// in place. Each error carries the offending entity names and enough
// structure to pinpoint the defect without re-running under tracing.

// UnresolvedReferenceError reports a symbolic reference to a name no
// declared entity (or synthesizable stack level) provides.
type UnresolvedReferenceError struct {
	From string // referencing entity
	To   string // missing name
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("entity %q references undeclared entity %q", e.From, e.To)
}

// CyclicDependencyError reports a dependency cycle. Cycle holds the full
// ordered cycle, first entity repeated at the end.
type CyclicDependencyError struct {
	Cycle []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("cyclic dependency: %s", strings.Join(e.Cycle, " -> "))
}

// InvalidStackError reports stack level percentages that do not sum to 1.
type InvalidStackError struct {
	Entity      string
	Percentages []float64
	Sum         float64
}

func (e *InvalidStackError) Error() string {
	return fmt.Sprintf("stack %q: percentages %v sum to %g, want 1.0", e.Entity, e.Percentages, e.Sum)
}

// AmbiguousDimensionError reports a null size axis with no inferable
// source: no alignment target, no interior object, and no catalog default
// for the entity's kind.
type AmbiguousDimensionError struct {
	Entity string
	Axis   Axis
}

func (e *AmbiguousDimensionError) Error() string {
	return fmt.Sprintf("entity %q: null size on axis %s has no inferable source", e.Entity, e.Axis)
}

// PlacementInfeasibleError reports a placement whose sampler exhausted its
// retry budget (or whose feasible region is empty before sampling).
type PlacementInfeasibleError struct {
	Fixture  string
	Object   string
	Attempts int
}

func (e *PlacementInfeasibleError) Error() string {
	if e.Attempts == 0 {
		return fmt.Sprintf("placement of %q on %q: feasible region is empty", e.Object, e.Fixture)
	}
	return fmt.Sprintf("placement of %q on %q: no collision-free sample after %d attempts", e.Object, e.Fixture, e.Attempts)
}
