// Package phoenix provides the Phoenix resilience phase machine.
//
// # Overview
//
// A monitored system is always in one of three phases:
//
//   - Normal:  healthy
//   - Nigredo: degraded (pressure too high)
//   - Rubedo:  recovery pending (coherence returning)
//
// Two signals drive the machine on every poll:
//
//   - Ψ (psi): coherence. Higher means readier to recover.
//   - Pe:      pressure. Higher means more degradation.
//
// # The Cycle
//
//	Normal ──(pe > PeMax)──▶ Nigredo ──(ψ ≥ PsiMin)──▶ Rubedo
//	  ▲                                                  │
//	  └────────────(ψ ≥ 0.83 and pe ≤ 0.5)───────────────┘
//
// Every other reading is a self-loop. There is no terminal phase; the
// machine is meant to be polled forever with fresh readings.
//
// Default thresholds:
//   - PeMax  = 2.4
//   - PsiMin = 0.21
//   - Recovery pair (fixed): Ψ ≥ 0.83, Pe ≤ 0.5
//
// # Quick Start
//
//	engine := phoenix.NewEngine(phoenix.DefaultConfig())
//
//	phase := phoenix.PhaseNormal
//	for reading := range readings {
//	    phase = engine.NextPhase(phase, reading.Psi, reading.Pe)
//	}
//
// The engine is stateless: the caller owns the current phase and passes it
// in on every call. Sharing one Engine across goroutines is safe.
//
// # Alternative Policies
//
// Callers should depend on Transitioner rather than *Engine. Any function
// with the right shape can stand in:
//
//	var policy phoenix.Transitioner = phoenix.TransitionFunc(
//	    func(p phoenix.Phase, psi, pe float64) phoenix.Phase { return p },
//	)
//
// # Incidents
//
// OnIncident maps a canary incident to a mitigation recommendation
// (rate_limit, capability_validation, integrity_verify or none).
//
// # Testing
//
// The Assert* helpers check any Transitioner against the machine's laws:
//
//	func TestMyPolicy(t *testing.T) {
//	    phoenix.AssertTotal(t, policy, phoenix.SignalGrid())
//	    phoenix.AssertBoundaries(t, policy, phoenix.DefaultConfig())
//	}
//
// # See Also
//
//   - examples/verify - command-line driver
package phoenix
