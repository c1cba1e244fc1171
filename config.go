package phoenix

// Recovery thresholds for leaving Rubedo. Both must hold.
// These are fixed and not part of Config.
const (
	RecoveryPsi = 0.83 // Ψ ≥ this
	RecoveryPe  = 0.5  // Pe ≤ this
)

// Config holds the thresholds for the phase machine.
type Config struct {
	Enabled bool    // Master switch (false → NextPhase is the identity)
	PsiMin  float64 // Minimum Ψ to advance out of Nigredo
	PeMax   float64 // Maximum Pe tolerated in Normal
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		PsiMin:  0.21, // ≈ 1/δ
		PeMax:   2.4,  // 80% of the r = 3.0 saturation boundary
	}
}
