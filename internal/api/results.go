package api

import (
	"net/http"

	"github.com/Muniranjani/heartcheck/internal/advice"
	"github.com/Muniranjani/heartcheck/internal/config"
	"github.com/Muniranjani/heartcheck/internal/domain"
	"github.com/Muniranjani/heartcheck/internal/identity"
	"github.com/Muniranjani/heartcheck/internal/risk"
)

// ResultView is the result page payload.
type ResultView struct {
	Name            string                      `json:"name"`
	Email           string                      `json:"email"`
	Phone           string                      `json:"phone,omitempty"`
	Age             int                         `json:"age"`
	Gender          string                      `json:"gender"`
	Cholesterol     int                         `json:"cholesterol"`
	BloodPressure   int                         `json:"blood_pressure"`
	HeartRate       int                         `json:"heart_rate"`
	Smoker          string                      `json:"smoker"`
	Risk            int                         `json:"risk"`
	RiskStatus      string                      `json:"risk_status"`
	RiskPoints      int                         `json:"risk_points"`
	Message         string                      `json:"message"`
	Recommendations domain.RecommendationBundle `json:"recommendations"`
}

func (h *Handler) resultView(r *http.Request) (ResultView, bool) {
	sessionID := identity.SessionIDFromContext(r.Context())
	state, ok := h.wiz.Snapshot(sessionID)
	if !ok || state.Stage != domain.StageMedicalInfo {
		return ResultView{}, false
	}

	// The three-tier status is recomputed independently of the stored
	// binary flag and may disagree with it.
	assessment := risk.WeightedStatusPolicy{}.Assess(state.Metrics)

	return ResultView{
		Name:            state.Username,
		Email:           state.Email,
		Phone:           state.Phone,
		Age:             state.Metrics.Age,
		Gender:          state.Metrics.GenderLabel(),
		Cholesterol:     state.Metrics.Chol,
		BloodPressure:   state.Metrics.Trestbps,
		HeartRate:       state.Metrics.HeartRate,
		Smoker:          state.Metrics.SmokerLabel(),
		Risk:            state.Risk,
		RiskStatus:      assessment.Status,
		RiskPoints:      assessment.Points,
		Message:         assessment.Message,
		Recommendations: advice.Generate(state.Risk, state.Metrics),
	}, true
}

// Result renders the assessment result for the current session. Visiting it
// before the wizard has completed redirects back to the first step instead
// of rendering a page of zero values.
func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	view, ok := h.resultView(r)
	if !ok {
		http.Redirect(w, r, "/basic_info", http.StatusSeeOther)
		return
	}
	h.render(w, http.StatusOK, "result.html", view)
}

// APIResult returns the result payload as JSON.
func (h *Handler) APIResult(w http.ResponseWriter, r *http.Request) {
	view, ok := h.resultView(r)
	if !ok {
		Error(w, http.StatusConflict, "wizard not completed for this session")
		return
	}
	JSON(w, http.StatusOK, view)
}

// QuickSubmit is the one-page assessment entry: it stores clinical values
// and a caller-supplied risk flag in the session without persisting a
// record, then hands off to the recommendation page.
func (h *Handler) QuickSubmit(w http.ResponseWriter, r *http.Request) {
	sessionID := identity.SessionIDFromContext(r.Context())

	var m domain.Metrics
	var err error
	if m.Chol, err = formIntDefault(r, "cholesterol", 0); err != nil {
		h.renderError(w, http.StatusBadRequest, err.Error())
		return
	}
	if m.Trestbps, err = formIntDefault(r, "blood_pressure", 0); err != nil {
		h.renderError(w, http.StatusBadRequest, err.Error())
		return
	}
	if m.HeartRate, err = formIntDefault(r, "heart_rate", 0); err != nil {
		h.renderError(w, http.StatusBadRequest, err.Error())
		return
	}
	if m.Smoker, err = formIntDefault(r, "smoker", 0); err != nil {
		h.renderError(w, http.StatusBadRequest, err.Error())
		return
	}
	if m.Diabetes, err = formIntDefault(r, "diabetes", config.DefaultDiabetes); err != nil {
		h.renderError(w, http.StatusBadRequest, err.Error())
		return
	}
	riskFlag, err := formIntDefault(r, "risk", config.DefaultRisk)
	if err != nil {
		h.renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.wiz.SetQuickAssessment(sessionID, m, riskFlag)
	http.Redirect(w, r, "/recommendation", http.StatusSeeOther)
}

// Recommendation recomputes the bundle from the session's stored risk flag.
// A session with no assessment at all falls back to the low-risk bundle
// over neutral metrics rather than failing; the page is reachable without
// completing the wizard.
func (h *Handler) Recommendation(w http.ResponseWriter, r *http.Request) {
	sessionID := identity.SessionIDFromContext(r.Context())

	riskFlag := config.DefaultRisk
	metrics := domain.Metrics{HeartRate: config.DefaultHeartRate}
	if state, ok := h.wiz.Snapshot(sessionID); ok && state.RiskSet {
		riskFlag = state.Risk
		metrics = state.Metrics
	}

	bundle := advice.Generate(riskFlag, metrics)
	h.render(w, http.StatusOK, "recommendation.html", bundle)
}
