package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/cortylix/site-go/internal/api/middleware"
	"github.com/cortylix/site-go/internal/application"
	"github.com/cortylix/site-go/internal/config"
	"github.com/cortylix/site-go/internal/domain/user"
	"github.com/cortylix/site-go/internal/testutils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var ticketNumberPattern = regexp.MustCompile(`^CTX-[0-9A-V]{20}$`)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	config.JwtSecret = "test-secret"
	middleware.Init()
	return testutils.SetupRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signUp(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/auth/signup", "", gin.H{
		"full_name": "Alice Tester",
		"email":     email,
		"password":  "secret1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup returned %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Token == "" {
		t.Fatal("signup returned no token")
	}
	return resp.Token
}

func TestSessionCookie_LivesAsLongAsToken(t *testing.T) {
	r, _ := setupRouter(t)
	signUp(t, r, "cookie@x.com")

	w := doJSON(t, r, "POST", "/auth/signin", "", gin.H{
		"email":    "cookie@x.com",
		"password": "secret1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("signin returned %d: %s", w.Code, w.Body.String())
	}

	cookies := (&http.Response{Header: w.Header()}).Cookies()
	var session *http.Cookie
	for _, ck := range cookies {
		if ck.Name == "token" {
			session = ck
		}
	}
	if session == nil {
		t.Fatal("signin set no token cookie")
	}
	if want := int(application.SessionDuration.Seconds()); session.MaxAge != want {
		t.Errorf("cookie max-age %d, want %d to match the token lifetime", session.MaxAge, want)
	}
}

func TestSignUpAndSubmitTicket(t *testing.T) {
	r, _ := setupRouter(t)
	token := signUp(t, r, "a@x.com")

	w := doJSON(t, r, "POST", "/tickets", token, gin.H{
		"title":       "VPN down",
		"description": "Nobody in the office can reach the VPN gateway.",
		"priority":    "high",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create ticket returned %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		TicketNumber string `json:"ticket_number"`
		Status       string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !ticketNumberPattern.MatchString(resp.TicketNumber) {
		t.Errorf("ticket number %q does not match expected format", resp.TicketNumber)
	}
	if resp.Status != "pending" {
		t.Errorf("expected pending status, got %q", resp.Status)
	}

	w = doJSON(t, r, "GET", "/tickets/my", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list my tickets returned %d: %s", w.Code, w.Body.String())
	}
	var list struct {
		Data []struct {
			TicketNumber string `json:"ticket_number"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list.Data) != 1 || list.Data[0].TicketNumber != resp.TicketNumber {
		t.Errorf("expected the submitted ticket in the caller's list, got %+v", list.Data)
	}
}

func TestSignUp_RejectsWeakInput(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, "POST", "/auth/signup", "", gin.H{
		"full_name": "A",
		"email":     "a@x.com",
		"password":  "secret1",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("1-char name: expected 400, got %d", w.Code)
	}

	w = doJSON(t, r, "POST", "/auth/signup", "", gin.H{
		"full_name": "Alice Tester",
		"email":     "not-an-email",
		"password":  "secret1",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad email: expected 400, got %d", w.Code)
	}

	w = doJSON(t, r, "POST", "/auth/signup", "", gin.H{
		"full_name": "Alice Tester",
		"email":     "a@x.com",
		"password":  "short",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("5-char password: expected 400, got %d", w.Code)
	}
}

func TestSignUp_DuplicateEmailConflict(t *testing.T) {
	r, _ := setupRouter(t)
	signUp(t, r, "a@x.com")

	w := doJSON(t, r, "POST", "/auth/signup", "", gin.H{
		"full_name": "Alice Again",
		"email":     "a@x.com",
		"password":  "secret2",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate email, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminRoutes_ForbiddenForRegularUser(t *testing.T) {
	r, _ := setupRouter(t)
	token := signUp(t, r, "a@x.com")

	paths := []struct {
		method string
		path   string
		body   interface{}
	}{
		{"GET", "/tickets", nil},
		{"PUT", "/tickets/1/status", gin.H{"status": "approved"}},
		{"PUT", "/tickets/1/notes", gin.H{"admin_notes": "x"}},
		{"POST", "/portfolio", gin.H{"title": "P", "category": "C", "description": "d"}},
		{"DELETE", "/portfolio/1", nil},
		{"GET", "/contact", nil},
		{"GET", "/audit/logs", nil},
	}
	for _, p := range paths {
		w := doJSON(t, r, p.method, p.path, token, p.body)
		if w.Code != http.StatusForbidden {
			t.Errorf("%s %s: expected 403 for non-admin, got %d", p.method, p.path, w.Code)
		}
	}
}

func TestTicketApprovalFlow(t *testing.T) {
	r, db := setupRouter(t)

	userToken := signUp(t, r, "a@x.com")
	adminToken := signUp(t, r, "admin@x.com")
	// promotion happens out of band; the role check reads the database, so
	// the existing session picks it up immediately
	if err := db.Model(&user.User{}).Where("email = ?", "admin@x.com").
		Update("role", string(user.RoleAdmin)).Error; err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, r, "POST", "/tickets", userToken, gin.H{
		"title":       "Printer jam",
		"description": "Second floor printer keeps jamming.",
		"priority":    "low",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create ticket returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "GET", "/tickets?status=pending", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin list returned %d: %s", w.Code, w.Body.String())
	}
	var list struct {
		Data []struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list.Data) != 1 {
		t.Fatalf("expected 1 pending ticket, got %d", len(list.Data))
	}
	statusPath := fmt.Sprintf("/tickets/%d/status", list.Data[0].ID)

	w = doJSON(t, r, "PUT", statusPath, adminToken, gin.H{
		"status":      "approved",
		"admin_notes": "Technician dispatched.",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("approve returned %d: %s", w.Code, w.Body.String())
	}

	// a decided ticket accepts no second disposition
	w = doJSON(t, r, "PUT", statusPath, adminToken, gin.H{"status": "rejected"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on finalized ticket, got %d: %s", w.Code, w.Body.String())
	}

	// notes stay editable
	w = doJSON(t, r, "PUT", fmt.Sprintf("/tickets/%d/notes", list.Data[0].ID), adminToken, gin.H{"admin_notes": "Closed after visit."})
	if w.Code != http.StatusOK {
		t.Fatalf("notes edit returned %d: %s", w.Code, w.Body.String())
	}
}

func TestPublicEndpoints_NoAuthRequired(t *testing.T) {
	r, _ := setupRouter(t)

	for _, path := range []string{"/portfolio", "/content/services", "/content/testimonials", "/content/stats"} {
		w := doJSON(t, r, "GET", path, "", nil)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, w.Code)
		}
	}

	w := doJSON(t, r, "POST", "/contact", "", gin.H{
		"name":    "Jane Smith",
		"email":   "jane@example.com",
		"subject": "Managed services quote",
		"body":    "We are looking for 24/7 coverage for two offices.",
	})
	if w.Code != http.StatusCreated {
		t.Errorf("POST /contact: expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, "POST", "/tickets", "", gin.H{
		"title":       "VPN down",
		"description": "d",
		"priority":    "high",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}

	req, _ := http.NewRequest("GET", "/tickets/my", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with garbage token, got %d", rec.Code)
	}
}
