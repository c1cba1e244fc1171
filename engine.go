package phoenix

// Transitioner maps the current phase and a signal reading to the next phase.
// Implementations must be safe for concurrent use.
type Transitioner interface {
	NextPhase(current Phase, psi, pe float64) Phase
}

// TransitionFunc adapts a plain function to the Transitioner interface.
type TransitionFunc func(current Phase, psi, pe float64) Phase

// NextPhase calls f(current, psi, pe).
func (f TransitionFunc) NextPhase(current Phase, psi, pe float64) Phase {
	return f(current, psi, pe)
}

// Engine is the Phoenix transition policy.
//
// The engine holds no state besides its Config, which is copied at
// construction and never modified. One Engine may be shared by any number
// of goroutines.
//
// Cycle:
//   - Normal → Nigredo when pressure exceeds PeMax
//   - Nigredo → Rubedo when coherence reaches PsiMin
//   - Rubedo → Normal when Ψ ≥ 0.83 and Pe ≤ 0.5
type Engine struct {
	cfg Config
}

var _ Transitioner = (*Engine)(nil)

// NewEngine creates an engine. Thresholds are not range checked.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns a copy of the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// NextPhase returns the phase that follows current for the reading (psi, pe).
//
// When the engine is disabled current is returned unchanged. Otherwise each
// phase looks at its own trigger:
//
//	Normal:  pe > PeMax               → Nigredo
//	Nigredo: psi >= PsiMin            → Rubedo
//	Rubedo:  psi >= 0.83 && pe <= 0.5 → Normal
//
// and stays put when the trigger does not fire. Note the strict > on the
// degrading edge versus >= on the two recovering edges.
//
// NaN signals fail every comparison, so a NaN reading leaves the phase
// unchanged. Infinities compare as ordinary values. Values outside the three
// defined phases are returned as-is.
func (e *Engine) NextPhase(current Phase, psi, pe float64) Phase {
	if !e.cfg.Enabled {
		return current
	}

	switch current {
	case PhaseNormal:
		if pe > e.cfg.PeMax {
			return PhaseNigredo
		}
	case PhaseNigredo:
		if psi >= e.cfg.PsiMin {
			return PhaseRubedo
		}
	case PhaseRubedo:
		if psi >= RecoveryPsi && pe <= RecoveryPe {
			return PhaseNormal
		}
	}
	return current
}
