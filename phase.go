package phoenix

import (
	"errors"
	"fmt"
	"strings"
)

// Phase is the operating regime of the monitored system.
type Phase int

const (
	PhaseNormal  Phase = iota // Healthy
	PhaseNigredo              // Degraded: pressure exceeded PeMax
	PhaseRubedo               // Recovery pending: coherence returning
)

// ErrUnknownPhase is returned when a name does not match any phase.
var ErrUnknownPhase = errors.New("unknown phase")

var phaseNames = [...]string{
	PhaseNormal:  "Normal",
	PhaseNigredo: "Nigredo",
	PhaseRubedo:  "Rubedo",
}

// Phases returns every phase in cycle order.
func Phases() []Phase {
	return []Phase{PhaseNormal, PhaseNigredo, PhaseRubedo}
}

// Valid reports whether p is one of the three defined phases.
func (p Phase) Valid() bool {
	return p >= PhaseNormal && p <= PhaseRubedo
}

func (p Phase) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// ParsePhase converts a phase name to a Phase. Matching ignores case.
func ParsePhase(s string) (Phase, error) {
	for _, p := range Phases() {
		if strings.EqualFold(s, phaseNames[p]) {
			return p, nil
		}
	}
	return PhaseNormal, fmt.Errorf("%w: %q", ErrUnknownPhase, s)
}

// MarshalText encodes the phase as its name.
func (p Phase) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPhase, int(p))
	}
	return []byte(phaseNames[p]), nil
}

// UnmarshalText decodes a phase name.
func (p *Phase) UnmarshalText(text []byte) error {
	parsed, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
