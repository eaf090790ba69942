package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Muniranjani/heartcheck/internal/domain"
	"github.com/Muniranjani/heartcheck/internal/identity"
	"github.com/Muniranjani/heartcheck/internal/risk"
	"github.com/Muniranjani/heartcheck/internal/store"
	"github.com/Muniranjani/heartcheck/internal/wizard"
	"github.com/Muniranjani/heartcheck/web"
	"github.com/go-chi/chi/v5"
)

func newTestApp(t *testing.T) (*httptest.Server, *http.Client, store.Repository) {
	t.Helper()

	repo, err := store.NewSQLiteInMemory()
	if err != nil {
		t.Fatalf("Failed to create in-memory store: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	tmpl, err := web.Templates()
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}

	wiz := wizard.NewService(repo, risk.BinaryRiskPolicy{})
	handler := NewHandler(repo, wiz, tmpl)

	r := chi.NewRouter()
	r.Use(identity.Middleware(true))
	handler.RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("Failed to create cookie jar: %v", err)
	}
	client := &http.Client{
		Jar: jar,
		// Keep redirects visible to the tests.
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return srv, client, repo
}

func postForm(t *testing.T, client *http.Client, target string, form url.Values) *http.Response {
	t.Helper()
	resp, err := client.Post(target, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("POST %s failed: %v", target, err)
	}
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	return string(body)
}

func basicInfoForm() url.Values {
	return url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"phone":    {"555-0101"},
		"age":      {"52"},
		"gender":   {"0"},
	}
}

func medicalInfoForm() url.Values {
	return url.Values{
		"trestbps":  {"130"},
		"chol":      {"210"},
		"heartrate": {"72"},
		"smoker":    {"0"},
	}
}

func TestWizardFlow(t *testing.T) {
	srv, client, repo := newTestApp(t)

	resp := postForm(t, client, srv.URL+"/basic_info", basicInfoForm())
	readBody(t, resp)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("basic_info status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/medical_info" {
		t.Errorf("basic_info redirect = %q, want /medical_info", loc)
	}

	resp = postForm(t, client, srv.URL+"/medical_info", medicalInfoForm())
	readBody(t, resp)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("medical_info status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/result" {
		t.Errorf("medical_info redirect = %q, want /result", loc)
	}

	subs, err := repo.ListAll(t.Context())
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("Expected exactly 1 persisted submission, got %d", len(subs))
	}
	// Age 52 breaches the binary age rule.
	if subs[0].Risk != 1 {
		t.Errorf("Persisted risk = %d, want 1", subs[0].Risk)
	}

	resp, err = client.Get(srv.URL + "/result")
	if err != nil {
		t.Fatalf("GET /result failed: %v", err)
	}
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("result status = %d, want 200", resp.StatusCode)
	}
	for _, want := range []string{"alice", "Female", "210", "130", "Moderate Risk"} {
		if !strings.Contains(body, want) {
			t.Errorf("Result page missing %q", want)
		}
	}
}

// A back-button resubmission of the medical form yields a second identical
// record. Kept on purpose; see DESIGN.md.
func TestMedicalInfoResubmitDuplicates(t *testing.T) {
	srv, client, repo := newTestApp(t)

	readBody(t, postForm(t, client, srv.URL+"/basic_info", basicInfoForm()))
	readBody(t, postForm(t, client, srv.URL+"/medical_info", medicalInfoForm()))
	readBody(t, postForm(t, client, srv.URL+"/medical_info", medicalInfoForm()))

	subs, err := repo.ListAll(t.Context())
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("Expected 2 persisted submissions, got %d", len(subs))
	}
	if subs[0].Chol != subs[1].Chol || subs[0].Risk != subs[1].Risk {
		t.Errorf("Duplicate records differ: %+v vs %+v", subs[0], subs[1])
	}
}

func TestBasicInfoCoercionError(t *testing.T) {
	srv, client, repo := newTestApp(t)

	form := basicInfoForm()
	form.Set("age", "fifty")
	resp := postForm(t, client, srv.URL+"/basic_info", form)
	readBody(t, resp)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400 for non-numeric age", resp.StatusCode)
	}

	subs, _ := repo.ListAll(t.Context())
	if len(subs) != 0 {
		t.Errorf("Nothing must be persisted on a coercion error, got %d rows", len(subs))
	}
}

func TestMedicalInfoCoercionError(t *testing.T) {
	srv, client, _ := newTestApp(t)

	readBody(t, postForm(t, client, srv.URL+"/basic_info", basicInfoForm()))

	form := medicalInfoForm()
	form.Set("chol", "high")
	resp := postForm(t, client, srv.URL+"/medical_info", form)
	readBody(t, resp)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400 for non-numeric cholesterol", resp.StatusCode)
	}
}

func TestMedicalInfoBeforeBasicRedirects(t *testing.T) {
	srv, client, repo := newTestApp(t)

	resp := postForm(t, client, srv.URL+"/medical_info", medicalInfoForm())
	readBody(t, resp)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("Status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/basic_info" {
		t.Errorf("Redirect = %q, want /basic_info", loc)
	}

	subs, _ := repo.ListAll(t.Context())
	if len(subs) != 0 {
		t.Errorf("Nothing must be persisted out of order, got %d rows", len(subs))
	}
}

func TestResultBeforeCompletionRedirects(t *testing.T) {
	srv, client, _ := newTestApp(t)

	resp, err := client.Get(srv.URL + "/result")
	if err != nil {
		t.Fatalf("GET /result failed: %v", err)
	}
	readBody(t, resp)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("Status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/basic_info" {
		t.Errorf("Redirect = %q, want /basic_info", loc)
	}
}

// The recommendation page is deliberately lenient: with no assessment in
// the session it falls back to the low-risk bundle instead of failing.
func TestRecommendationWithoutSessionDefaultsToLowRisk(t *testing.T) {
	srv, client, _ := newTestApp(t)

	resp, err := client.Get(srv.URL + "/recommendation")
	if err != nil {
		t.Fatalf("GET /recommendation failed: %v", err)
	}
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(body, "currently at low risk") {
		t.Error("Expected the low-risk summary")
	}
	if strings.Contains(body, "Just for You") {
		t.Error("Low-risk page must not contain specific tips")
	}
}

func TestQuickSubmitFlow(t *testing.T) {
	srv, client, repo := newTestApp(t)

	form := url.Values{
		"cholesterol":    {"250"},
		"blood_pressure": {"150"},
		"heart_rate":     {"110"},
		"smoker":         {"1"},
		"diabetes":       {"1"},
		"risk":           {"1"},
	}
	resp := postForm(t, client, srv.URL+"/submit", form)
	readBody(t, resp)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("Status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/recommendation" {
		t.Errorf("Redirect = %q, want /recommendation", loc)
	}

	resp, err := client.Get(srv.URL + "/recommendation")
	if err != nil {
		t.Fatalf("GET /recommendation failed: %v", err)
	}
	body := readBody(t, resp)
	for _, want := range []string{"high risk", "Cholesterol is high", "You smoke", "Manage diabetes"} {
		if !strings.Contains(body, want) {
			t.Errorf("Recommendation page missing %q", want)
		}
	}

	// The quick flow never persists a record.
	subs, _ := repo.ListAll(t.Context())
	if len(subs) != 0 {
		t.Errorf("Quick submit must not persist, got %d rows", len(subs))
	}
}

func TestUsersPageAndAPISubmissions(t *testing.T) {
	srv, client, _ := newTestApp(t)

	readBody(t, postForm(t, client, srv.URL+"/basic_info", basicInfoForm()))
	readBody(t, postForm(t, client, srv.URL+"/medical_info", medicalInfoForm()))

	second := basicInfoForm()
	second.Set("username", "bob")
	second.Set("age", "30")
	second.Set("gender", "1")
	readBody(t, postForm(t, client, srv.URL+"/basic_info", second))
	readBody(t, postForm(t, client, srv.URL+"/medical_info", medicalInfoForm()))

	resp, err := client.Get(srv.URL + "/users")
	if err != nil {
		t.Fatalf("GET /users failed: %v", err)
	}
	body := readBody(t, resp)
	if !strings.Contains(body, "alice") || !strings.Contains(body, "bob") {
		t.Error("Users page must list both submissions")
	}

	resp, err = client.Get(srv.URL + "/api/submissions")
	if err != nil {
		t.Fatalf("GET /api/submissions failed: %v", err)
	}
	defer resp.Body.Close()

	var subs []domain.Submission
	if err := json.NewDecoder(resp.Body).Decode(&subs); err != nil {
		t.Fatalf("Failed to decode submissions: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("Expected 2 submissions, got %d", len(subs))
	}
	if subs[0].Username != "bob" || subs[1].Username != "alice" {
		t.Errorf("Expected newest first, got [%s, %s]", subs[0].Username, subs[1].Username)
	}
}

func TestAPIResult(t *testing.T) {
	srv, client, _ := newTestApp(t)

	resp, err := client.Get(srv.URL + "/api/result")
	if err != nil {
		t.Fatalf("GET /api/result failed: %v", err)
	}
	readBody(t, resp)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("Status = %d, want 409 before wizard completion", resp.StatusCode)
	}

	readBody(t, postForm(t, client, srv.URL+"/basic_info", basicInfoForm()))
	readBody(t, postForm(t, client, srv.URL+"/medical_info", medicalInfoForm()))

	resp, err = client.Get(srv.URL + "/api/result")
	if err != nil {
		t.Fatalf("GET /api/result failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Status = %d, want 200", resp.StatusCode)
	}

	var view ResultView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}
	if view.Name != "alice" || view.Gender != "Female" || view.Smoker != "No" {
		t.Errorf("Unexpected result view: %+v", view)
	}
	if view.Risk != 1 {
		t.Errorf("Risk = %d, want 1", view.Risk)
	}
	// chol 210 (+1) + bp 130 (+1) = 2 points.
	if view.RiskPoints != 2 || view.RiskStatus != "Moderate Risk" {
		t.Errorf("Weighted status = (%d, %q), want (2, Moderate Risk)", view.RiskPoints, view.RiskStatus)
	}
	if len(view.Recommendations.Specific) == 0 {
		t.Error("High-risk result must carry specific tips")
	}
}

func TestHealth(t *testing.T) {
	srv, client, _ := newTestApp(t)

	resp, err := client.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET /api/health failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Status = %d, want 200", resp.StatusCode)
	}

	var payload map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Failed to decode health payload: %v", err)
	}
	if payload["status"] != "ok" || payload["db"] != "ok" {
		t.Errorf("Unexpected health payload: %v", payload)
	}
}

func TestJSONHelper(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusOK, map[string]string{"foo": "bar"})

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if got["foo"] != "bar" {
		t.Errorf("Expected foo=bar, got %v", got["foo"])
	}
}
