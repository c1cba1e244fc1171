package phoenix

// ThreatType identifies the kind of canary incident.
type ThreatType string

const (
	ThreatDoS                ThreatType = "dos-attack"
	ThreatInjection          ThreatType = "injection"
	ThreatCapabilityBreach   ThreatType = "capability-breach"
	ThreatTreasuryExploit    ThreatType = "treasury-exploit"
	ThreatIntegrityViolation ThreatType = "integrity-violation"
)

// MitigationKind is the recommended response to an incident.
type MitigationKind string

const (
	MitigationNone                 MitigationKind = "none"
	MitigationRateLimit            MitigationKind = "rate_limit"
	MitigationCapabilityValidation MitigationKind = "capability_validation"
	MitigationIntegrityVerify      MitigationKind = "integrity_verify"
)

// DefaultRealm is used when an incident names no realm.
const DefaultRealm = "default"

// Incident is a canary report.
type Incident struct {
	ThreatType ThreatType `json:"threatType"`
	Realm      string     `json:"realm,omitempty"`
}

// Mitigation is the engine's recommendation for an incident.
type Mitigation struct {
	Kind       MitigationKind `json:"kind"`
	Parameters map[string]any `json:"parameters"`
}

// OnIncident recommends a mitigation for inc.
// The recommendation does not depend on Config; a disabled engine still advises.
func (e *Engine) OnIncident(inc Incident) Mitigation {
	realm := inc.Realm
	if realm == "" {
		realm = DefaultRealm
	}

	switch inc.ThreatType {
	case ThreatDoS, ThreatInjection:
		return Mitigation{
			Kind:       MitigationRateLimit,
			Parameters: map[string]any{"realm": realm, "mode": "auto"},
		}
	case ThreatCapabilityBreach, ThreatTreasuryExploit:
		return Mitigation{
			Kind:       MitigationCapabilityValidation,
			Parameters: map[string]any{"realm": realm, "revalidate": true},
		}
	case ThreatIntegrityViolation:
		return Mitigation{
			Kind:       MitigationIntegrityVerify,
			Parameters: map[string]any{"realm": realm, "recompute_merkle": true},
		}
	default:
		return Mitigation{Kind: MitigationNone, Parameters: map[string]any{}}
	}
}
