package domain

// WizardStage enumerates the states of the two-step submission wizard.
// The stage advances monotonically within one wizard pass; starting the
// wizard over resets it to StageBasicInfo with fresh values.
type WizardStage int

const (
	// StageEmpty is a session that has not submitted anything yet.
	StageEmpty WizardStage = iota
	// StageBasicInfo means demographic fields have been collected.
	StageBasicInfo
	// StageMedicalInfo is terminal: clinical fields collected, risk
	// computed, and the submission persisted.
	StageMedicalInfo
)

// String returns a human-readable stage name for logging.
func (s WizardStage) String() string {
	switch s {
	case StageBasicInfo:
		return "basic_info"
	case StageMedicalInfo:
		return "medical_info"
	default:
		return "empty"
	}
}

// WizardState is the transient per-session accumulator for one wizard pass.
// Values are retained after persistence so the result and recommendation
// pages can redisplay them; the state is lost when the process restarts.
type WizardState struct {
	Stage    WizardStage
	Username string
	Email    string
	Phone    string
	Metrics  Metrics
	// Risk is the binary flag computed at medical-info submission (or
	// supplied directly by the quick-assessment flow).
	Risk int
	// RiskSet distinguishes "risk computed/supplied" from the zero value.
	RiskSet bool
}
