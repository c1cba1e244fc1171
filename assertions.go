package phoenix

import (
	"math"
	"testing"
)

// Signal is one (Ψ, Pe) reading.
type Signal struct {
	Psi float64
	Pe  float64
}

// SignalGrid returns a deterministic set of readings covering zeros,
// negatives, every default threshold and values well past them.
func SignalGrid() []Signal {
	values := []float64{
		-1.0, 0.0, 0.1,
		0.208, 0.21, 0.25,
		0.5, 0.6, 0.83, 0.9,
		1.0, 2.4, 2.5, 3.0,
		1e9,
	}
	grid := make([]Signal, 0, len(values)*len(values))
	for _, psi := range values {
		for _, pe := range values {
			grid = append(grid, Signal{Psi: psi, Pe: pe})
		}
	}
	return grid
}

// AssertTransition verifies a single edge of the machine.
func AssertTransition(t testing.TB, tr Transitioner, from Phase, psi, pe float64, want Phase) {
	t.Helper()

	if got := tr.NextPhase(from, psi, pe); got != want {
		t.Errorf("NextPhase(%s, ψ=%g, pe=%g) = %s, want %s", from, psi, pe, got, want)
	}
}

// AssertIdentity verifies that every phase maps to itself for every reading.
// This is the contract of a disabled engine.
func AssertIdentity(t testing.TB, tr Transitioner, signals []Signal) {
	t.Helper()

	violations := 0
	for _, p := range Phases() {
		for _, s := range signals {
			if got := tr.NextPhase(p, s.Psi, s.Pe); got != p {
				violations++
				t.Errorf("Identity violated: NextPhase(%s, ψ=%g, pe=%g) = %s", p, s.Psi, s.Pe, got)
			}
		}
	}

	if violations == 0 {
		t.Logf("✓ Identity: %d phases × %d readings unchanged", len(Phases()), len(signals))
	}
}

// AssertTotal verifies that every valid phase maps to a valid phase.
func AssertTotal(t testing.TB, tr Transitioner, signals []Signal) {
	t.Helper()

	for _, p := range Phases() {
		for _, s := range signals {
			if got := tr.NextPhase(p, s.Psi, s.Pe); !got.Valid() {
				t.Errorf("Totality violated: NextPhase(%s, ψ=%g, pe=%g) = %s", p, s.Psi, s.Pe, got)
			}
		}
	}
}

// AssertBoundaries verifies the comparison direction of each edge at its
// exact threshold for an enabled engine with thresholds cfg.
//
//	Normal  at pe == PeMax          stays   (strict >)
//	Nigredo at psi == PsiMin        advances (>=)
//	Rubedo  at (0.83, 0.5) exactly  recovers (>= and <=)
func AssertBoundaries(t testing.TB, tr Transitioner, cfg Config) {
	t.Helper()

	AssertTransition(t, tr, PhaseNormal, 0, cfg.PeMax, PhaseNormal)
	AssertTransition(t, tr, PhaseNormal, 0, math.Nextafter(cfg.PeMax, math.Inf(1)), PhaseNigredo)

	AssertTransition(t, tr, PhaseNigredo, cfg.PsiMin, 0, PhaseRubedo)
	AssertTransition(t, tr, PhaseNigredo, math.Nextafter(cfg.PsiMin, math.Inf(-1)), 0, PhaseNigredo)

	AssertTransition(t, tr, PhaseRubedo, RecoveryPsi, RecoveryPe, PhaseNormal)
	AssertTransition(t, tr, PhaseRubedo, math.Nextafter(RecoveryPsi, math.Inf(-1)), RecoveryPe, PhaseRubedo)
	AssertTransition(t, tr, PhaseRubedo, RecoveryPsi, math.Nextafter(RecoveryPe, math.Inf(1)), PhaseRubedo)
}
