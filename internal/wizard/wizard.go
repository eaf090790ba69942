// Package wizard implements the two-step submission wizard: per-session
// accumulation of form input, risk classification, and the single durable
// write that ends a wizard pass.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Muniranjani/heartcheck/internal/config"
	"github.com/Muniranjani/heartcheck/internal/domain"
	"github.com/Muniranjani/heartcheck/internal/risk"
	"github.com/Muniranjani/heartcheck/internal/store"
)

// ErrStageOrder is returned when medical info is submitted before basic
// info for the session.
var ErrStageOrder = errors.New("wizard: basic info must be submitted first")

// Service coordinates wizard sessions. State lives in process memory and is
// scoped per session ID: a restart or expired session loses any pass that
// has not reached the durable write.
type Service struct {
	repo       store.Repository
	classifier risk.Classifier
	// shadow, when set, is consulted at submit time and its verdict is
	// logged next to the rule verdict. It never influences the persisted
	// risk flag.
	shadow risk.Classifier

	mu       sync.RWMutex
	sessions map[string]*session
}

type session struct {
	mu    sync.Mutex
	state domain.WizardState
}

// NewService creates a wizard service backed by the given repository and
// primary classifier.
func NewService(repo store.Repository, classifier risk.Classifier) *Service {
	return &Service{
		repo:       repo,
		classifier: classifier,
		sessions:   make(map[string]*session),
	}
}

// SetShadowClassifier installs an optional secondary classifier for
// comparison logging.
func (s *Service) SetShadowClassifier(c risk.Classifier) {
	s.shadow = c
}

func (s *Service) session(id string) *session {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		return sess
	}
	sess = &session{}
	s.sessions[id] = sess
	return sess
}

// SubmitBasicInfo stores the demographic fields verbatim and advances the
// session to StageBasicInfo. Submitting basic info again starts a fresh
// wizard pass, discarding any previously accumulated values.
func (s *Service) SubmitBasicInfo(sessionID, username, email, phone string, age, gender int) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.state = domain.WizardState{
		Stage:    domain.StageBasicInfo,
		Username: username,
		Email:    email,
		Phone:    phone,
		Metrics: domain.Metrics{
			Age:      age,
			Gender:   gender,
			Diabetes: config.DefaultDiabetes,
		},
	}

	slog.Info("Wizard basic info collected", "session_id", sessionID)
}

// SubmitMedicalInfo stores the clinical fields, classifies risk, and
// performs exactly one durable write. This is the single side-effecting
// step of a wizard pass.
//
// Submitting medical info again for a session already at StageMedicalInfo
// repeats the write with the same values and produces a second record. A
// browser back-button resubmission is expected to do this; see DESIGN.md.
func (s *Service) SubmitMedicalInfo(ctx context.Context, sessionID string, trestbps, chol, heartRate, smoker int) (*domain.Submission, error) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state.Stage == domain.StageEmpty {
		return nil, ErrStageOrder
	}

	sess.state.Metrics.Trestbps = trestbps
	sess.state.Metrics.Chol = chol
	sess.state.Metrics.HeartRate = heartRate
	sess.state.Metrics.Smoker = smoker

	riskFlag := s.classifier.Classify(sess.state.Metrics)

	if s.shadow != nil {
		shadowFlag := s.shadow.Classify(sess.state.Metrics)
		slog.Info("Classifier comparison",
			"session_id", sessionID,
			s.classifier.Name(), riskFlag,
			s.shadow.Name(), shadowFlag,
		)
	}

	sub := &domain.Submission{
		Username:  sess.state.Username,
		Email:     sess.state.Email,
		Phone:     sess.state.Phone,
		Age:       sess.state.Metrics.Age,
		Gender:    sess.state.Metrics.Gender,
		Trestbps:  trestbps,
		Chol:      chol,
		HeartRate: heartRate,
		Smoker:    smoker,
		Diabetes:  sess.state.Metrics.Diabetes,
		Risk:      riskFlag,
	}

	id, err := s.repo.Append(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("persist submission: %w", err)
	}

	sess.state.Stage = domain.StageMedicalInfo
	sess.state.Risk = riskFlag
	sess.state.RiskSet = true

	slog.Info("Submission persisted", "session_id", sessionID, "record_id", id, "risk", riskFlag)
	return sub, nil
}

// SetQuickAssessment stores clinical values and a caller-supplied risk flag
// for the session without persisting anything. It backs the one-page
// assessment flow that feeds the recommendation page directly.
func (s *Service) SetQuickAssessment(sessionID string, m domain.Metrics, riskFlag int) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.state.Metrics.Trestbps = m.Trestbps
	sess.state.Metrics.Chol = m.Chol
	sess.state.Metrics.HeartRate = m.HeartRate
	sess.state.Metrics.Smoker = m.Smoker
	sess.state.Metrics.Diabetes = m.Diabetes
	sess.state.Risk = riskFlag
	sess.state.RiskSet = true

	slog.Info("Quick assessment stored", "session_id", sessionID, "risk", riskFlag)
}

// Snapshot returns a copy of the session's wizard state. The second return
// value reports whether the session has any state at all.
func (s *Service) Snapshot(sessionID string) (domain.WizardState, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return domain.WizardState{}, false
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.state, true
}
