package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"girvi-backend/internal/database"
	"girvi-backend/internal/models"
)

func TestRegisterValidation(t *testing.T) {
	r := setupTest(t)

	// Missing everything: rejected before any write
	w := doJSON(t, r, "POST", "/register", map[string]any{}, "")
	wantStatus(t, w, http.StatusBadRequest)

	var count int64
	database.DB.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Fatalf("validation failure still wrote %d user(s)", count)
	}

	w = doJSON(t, r, "POST", "/register", map[string]any{
		"name": "Ravi", "email": "ravi@shop.test", "contact": "9000000010", "password": "secret12",
	}, "")
	wantStatus(t, w, http.StatusCreated)

	// Duplicate email
	w = doJSON(t, r, "POST", "/register", map[string]any{
		"name": "Ravi2", "email": "ravi@shop.test", "contact": "9000000011", "password": "secret12",
	}, "")
	wantStatus(t, w, http.StatusBadRequest)
}

func loginCookie(w *httptest.ResponseRecorder) string {
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			return c.Value
		}
	}
	return ""
}

func TestLogin(t *testing.T) {
	r := setupTest(t)
	user, _ := newAdmin(t)

	// Wrong password: 401, and no cookie issued
	w := doJSON(t, r, "POST", "/login", map[string]any{
		"email": user.Email, "password": "wrong-password",
	}, "")
	wantStatus(t, w, http.StatusUnauthorized)
	if loginCookie(w) != "" {
		t.Fatal("failed login still set a token cookie")
	}

	// Correct password: token in body and cookie
	w = doJSON(t, r, "POST", "/login", map[string]any{
		"email": user.Email, "password": "password1",
	}, "")
	wantStatus(t, w, http.StatusOK)
	body := decode(t, w)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("login response has no token")
	}
	if loginCookie(w) == "" {
		t.Fatal("login did not set the token cookie")
	}

	// A soft-deleted user's email looks like a missing account
	database.DB.Delete(&models.User{}, user.ID)
	w = doJSON(t, r, "POST", "/login", map[string]any{
		"email": user.Email, "password": "password1",
	}, "")
	wantStatus(t, w, http.StatusNotFound)
}

func TestAuthGate(t *testing.T) {
	r := setupTest(t)
	_, adminToken := newAdmin(t)
	_, staffToken := newUser(t, "staff", "staff@shop.test", "9000000002")

	// No session at all
	w := doJSON(t, r, "GET", "/api/users", nil, "")
	wantStatus(t, w, http.StatusUnauthorized)

	// Staff hitting an admin route
	w = doJSON(t, r, "GET", "/api/users", nil, staffToken)
	wantStatus(t, w, http.StatusForbidden)

	// Admin via Authorization header
	w = doJSON(t, r, "GET", "/api/users", nil, adminToken)
	wantStatus(t, w, http.StatusOK)

	// Admin via the cookie instead of the header
	req := httptest.NewRequest("GET", "/api/users", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: adminToken})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	wantStatus(t, rec, http.StatusOK)

	// Garbage token
	w = doJSON(t, r, "GET", "/api/users", nil, "not.a.token")
	wantStatus(t, w, http.StatusUnauthorized)
}

func TestRemovedUserTokenRejected(t *testing.T) {
	r := setupTest(t)
	_, adminToken := newAdmin(t)
	victim, victimToken := newUser(t, "staff", "victim@shop.test", "9000000003")

	w := doJSON(t, r, "GET", "/api/customers", nil, victimToken)
	wantStatus(t, w, http.StatusOK)

	w = doJSON(t, r, "DELETE", "/api/users/"+itoa(victim.ID), nil, adminToken)
	wantStatus(t, w, http.StatusOK)

	// Old token no longer resolves to a live user
	w = doJSON(t, r, "GET", "/api/customers", nil, victimToken)
	wantStatus(t, w, http.StatusUnauthorized)

	// The row still exists with remove_at set
	var raw models.User
	if err := database.DB.Unscoped().First(&raw, victim.ID).Error; err != nil {
		t.Fatalf("removed user gone from store: %v", err)
	}
	if !raw.RemoveAt.Valid {
		t.Fatal("remove_at not set on soft-deleted user")
	}

	// And out of the active listing
	w = doJSON(t, r, "GET", "/api/users", nil, adminToken)
	wantStatus(t, w, http.StatusOK)
	if strings.Contains(w.Body.String(), "victim@shop.test") {
		t.Fatal("soft-deleted user still listed as active")
	}
}
