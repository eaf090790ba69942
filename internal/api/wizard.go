package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Muniranjani/heartcheck/internal/identity"
	"github.com/Muniranjani/heartcheck/internal/shared"
	"github.com/Muniranjani/heartcheck/internal/wizard"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers every page and API route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Home)
	r.Post("/start", h.Start)

	r.Get("/basic_info", h.BasicInfoForm)
	r.Post("/basic_info", h.BasicInfoSubmit)
	r.Get("/medical_info", h.MedicalInfoForm)
	r.Post("/medical_info", h.MedicalInfoSubmit)

	r.Get("/result", h.Result)
	r.Post("/submit", h.QuickSubmit)
	r.Get("/recommendation", h.Recommendation)

	r.Get("/users", h.Users)
	r.Get("/about", h.About)
	r.Get("/contact", h.Contact)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/submissions", h.APISubmissions)
		r.Get("/result", h.APIResult)
	})
}

// Home renders the landing page.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "index.html", nil)
}

// Start begins a wizard pass.
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/basic_info", http.StatusSeeOther)
}

// About renders the about page.
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "about.html", nil)
}

// Contact renders the contact page.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "contact.html", nil)
}

// BasicInfoForm renders the first wizard page.
func (h *Handler) BasicInfoForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "basic_info.html", nil)
}

// BasicInfoSubmit collects the demographic fields and advances the wizard.
func (h *Handler) BasicInfoSubmit(w http.ResponseWriter, r *http.Request) {
	sessionID := identity.SessionIDFromContext(r.Context())

	age, err := formInt(r, "age")
	if err != nil {
		h.renderError(w, http.StatusBadRequest, err.Error())
		return
	}
	gender, err := formInt(r, "gender")
	if err != nil {
		h.renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.wiz.SubmitBasicInfo(sessionID,
		r.FormValue("username"),
		r.FormValue("email"),
		r.FormValue("phone"),
		age, gender,
	)

	http.Redirect(w, r, "/medical_info", http.StatusSeeOther)
}

// MedicalInfoForm renders the second wizard page.
func (h *Handler) MedicalInfoForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "medical_info.html", nil)
}

// MedicalInfoSubmit collects the clinical fields, classifies risk, and
// persists the submission.
func (h *Handler) MedicalInfoSubmit(w http.ResponseWriter, r *http.Request) {
	sessionID := identity.SessionIDFromContext(r.Context())

	trestbps, err := formInt(r, "trestbps")
	if err != nil {
		h.renderError(w, http.StatusBadRequest, err.Error())
		return
	}
	chol, err := formInt(r, "chol")
	if err != nil {
		h.renderError(w, http.StatusBadRequest, err.Error())
		return
	}
	heartRate, err := formInt(r, "heartrate")
	if err != nil {
		h.renderError(w, http.StatusBadRequest, err.Error())
		return
	}
	smoker, err := formInt(r, "smoker")
	if err != nil {
		h.renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err = h.wiz.SubmitMedicalInfo(r.Context(), sessionID, trestbps, chol, heartRate, smoker)
	if errors.Is(err, wizard.ErrStageOrder) {
		http.Redirect(w, r, "/basic_info", http.StatusSeeOther)
		return
	}
	if err != nil {
		slog.Error("Failed to persist submission", "error", err, "session_id", sessionID)
		if shared.IsSQLiteConflictError(err) {
			h.renderError(w, http.StatusServiceUnavailable, "The record store is busy. Please try again.")
			return
		}
		h.renderError(w, http.StatusInternalServerError, "Could not save your submission.")
		return
	}

	http.Redirect(w, r, "/result", http.StatusSeeOther)
}
