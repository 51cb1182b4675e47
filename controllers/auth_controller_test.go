package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"storefront-api/middleware"
	"storefront-api/models"
	"storefront-api/repositories"
	"storefront-api/services"
	"storefront-api/utils"
)

const (
	testSecret = "test-secret"
	testAPIKey = "test-api-key"
)

type memUserRepo struct {
	users  map[string]*models.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*models.User{}, nextID: 1}
}

func (m *memUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := m.users[email]
	return ok, nil
}

func (m *memUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = m.nextID
	m.nextID++
	cp := *user
	m.users[user.Email] = &cp
	return nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) FindAdminByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok || u.Role != models.RoleAdmin {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func newAuthRouter(repo repositories.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewAuthController(services.NewAuthService(repo, testSecret))

	r := gin.New()
	r.POST("/api/auth/register", middleware.APIKeyMiddleware(testAPIKey), ctrl.Register)
	r.POST("/api/auth/login", ctrl.Login)
	r.POST("/api/auth/admin/login", ctrl.AdminLogin)
	return r
}

func postJSON(r *gin.Engine, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func apiKeyHeader() map[string]string {
	return map[string]string{"x-api-key": testAPIKey}
}

func TestRegisterRequiresAPIKey(t *testing.T) {
	r := newAuthRouter(newMemUserRepo())

	body := `{"name":"Hema","email":"hema@example.com","password":"pw"}`

	w := postJSON(r, "/api/auth/register", body, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no key: status = %d, want 401", w.Code)
	}

	w = postJSON(r, "/api/auth/register", body, map[string]string{"x-api-key": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong key: status = %d, want 401", w.Code)
	}
}

func TestRegisterEndpoint(t *testing.T) {
	repo := newMemUserRepo()
	r := newAuthRouter(repo)

	w := postJSON(r, "/api/auth/register",
		`{"name":"Hema","email":"hema@example.com"}`, apiKeyHeader())
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing password: status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Please provide name, email, and password") {
		t.Errorf("body = %s", w.Body.String())
	}

	w = postJSON(r, "/api/auth/register",
		`{"name":"Hema","email":"hema@example.com","password":"testpassword"}`, apiKeyHeader())
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}

	var resp models.RegisterResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.UserID == 0 {
		t.Error("userId = 0, want generated id")
	}
	if resp.Message != "User registered successfully" {
		t.Errorf("message = %q", resp.Message)
	}

	w = postJSON(r, "/api/auth/register",
		`{"name":"Other","email":"hema@example.com","password":"different"}`, apiKeyHeader())
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate email: status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Email already registered") {
		t.Errorf("body = %s", w.Body.String())
	}
	if len(repo.users) != 1 {
		t.Errorf("rows = %d, want 1", len(repo.users))
	}
}

func TestLoginEndpoint(t *testing.T) {
	repo := newMemUserRepo()
	r := newAuthRouter(repo)

	postJSON(r, "/api/auth/register",
		`{"name":"Hema","email":"hema@example.com","password":"testpassword"}`, apiKeyHeader())

	w := postJSON(r, "/api/auth/login",
		`{"email":"hema@example.com","password":"testpassword"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	var resp models.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Message != "Login successful" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.User.Name != "Hema" || resp.User.Email != "hema@example.com" {
		t.Errorf("user = %+v", resp.User)
	}

	claims, err := utils.ValidateToken(testSecret, resp.Token)
	if err != nil {
		t.Fatalf("returned token invalid: %v", err)
	}
	if claims.UserID != resp.User.UserID {
		t.Errorf("token user id = %d, want %d", claims.UserID, resp.User.UserID)
	}
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	repo := newMemUserRepo()
	r := newAuthRouter(repo)

	postJSON(r, "/api/auth/register",
		`{"name":"Hema","email":"hema@example.com","password":"testpassword"}`, apiKeyHeader())

	wrongPassword := postJSON(r, "/api/auth/login",
		`{"email":"hema@example.com","password":"wrong"}`, nil)
	unknownEmail := postJSON(r, "/api/auth/login",
		`{"email":"nobody@example.com","password":"testpassword"}`, nil)

	if wrongPassword.Code != http.StatusUnauthorized || unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("statuses = %d/%d, want 401/401", wrongPassword.Code, unknownEmail.Code)
	}
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Errorf("failure bodies differ: %s vs %s",
			wrongPassword.Body.String(), unknownEmail.Body.String())
	}
}

func TestAdminLoginEndpoint(t *testing.T) {
	repo := newMemUserRepo()
	hash, err := utils.HashPassword("adminpw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	repo.users["admin@example.com"] = &models.User{
		ID: 1, Name: "Admin", Email: "admin@example.com", Password: hash, Role: models.RoleAdmin,
	}
	repo.nextID = 2
	r := newAuthRouter(repo)

	w := postJSON(r, "/api/auth/admin/login",
		`{"email":"admin@example.com","password":"adminpw"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	var resp models.AdminLoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	claims, err := utils.ValidateToken(testSecret, resp.Token)
	if err != nil {
		t.Fatalf("returned token invalid: %v", err)
	}
	if claims.Role != models.RoleAdmin {
		t.Errorf("token role = %q, want admin", claims.Role)
	}

	w = postJSON(r, "/api/auth/admin/login",
		`{"email":"nobody@example.com","password":"adminpw"}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unknown admin: status = %d, want 401", w.Code)
	}
}
