package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ah0048/BrainWise-JobTask/internal/config"
	"github.com/ah0048/BrainWise-JobTask/internal/models"
	"github.com/ah0048/BrainWise-JobTask/internal/records"
)

type testEnv struct {
	router  *gin.Engine
	service *records.Service
}

func setupTestEnv(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.SessionToken{},
		&models.Company{},
		&models.Department{},
		&models.Employee{},
	))

	router := gin.New()
	Register(router, db, config.Config{})

	return &testEnv{router: router, service: records.NewService(db)}
}

func (env *testEnv) seedUser(t *testing.T, email string, role models.Role) {
	_, err := env.service.CreateUser(context.Background(), records.UserInput{
		Email:    email,
		Name:     "Seeded User",
		Password: "correct-horse8",
		Role:     role,
	})
	require.NoError(t, err)
}

func (env *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, req)
	return recorder
}

func (env *testEnv) login(t *testing.T, email string) string {
	recorder := env.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": "correct-horse8",
	})
	require.Equal(t, http.StatusOK, recorder.Code, "login should succeed: %s", recorder.Body.String())

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestLoginReturnsRoleAndUserID(t *testing.T) {
	env := setupTestEnv(t)
	env.seedUser(t, "admin@acme.test", models.RoleAdmin)

	recorder := env.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@acme.test",
		"password": "correct-horse8",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "admin", body["role"])
	assert.NotEmpty(t, body["userId"])
}

func TestLoginWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.seedUser(t, "admin@acme.test", models.RoleAdmin)

	recorder := env.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@acme.test",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "token")
}

func TestLogout(t *testing.T) {
	env := setupTestEnv(t)
	env.seedUser(t, "admin@acme.test", models.RoleAdmin)
	token := env.login(t, "admin@acme.test")

	recorder := env.request(t, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	// The revoked token no longer authenticates.
	recorder = env.request(t, http.MethodGet, "/api/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// A second logout finds no active session.
	recorder = env.request(t, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLogoutWithoutAuthorizationHeader(t *testing.T) {
	env := setupTestEnv(t)

	recorder := env.request(t, http.MethodPost, "/api/auth/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	env := setupTestEnv(t)

	recorder := env.request(t, http.MethodGet, "/api/companies", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = env.request(t, http.MethodGet, "/api/companies", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestCompanyCreateRequiresAdmin(t *testing.T) {
	env := setupTestEnv(t)
	env.seedUser(t, "admin@acme.test", models.RoleAdmin)
	env.seedUser(t, "manager@acme.test", models.RoleManager)
	env.seedUser(t, "employee@acme.test", models.RoleEmployee)

	payload := gin.H{"name": "Acme"}

	recorder := env.request(t, http.MethodPost, "/api/companies", env.login(t, "employee@acme.test"), payload)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = env.request(t, http.MethodPost, "/api/companies", env.login(t, "manager@acme.test"), payload)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = env.request(t, http.MethodPost, "/api/companies", env.login(t, "admin@acme.test"), payload)
	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestEmployeeRoleIsReadOnly(t *testing.T) {
	env := setupTestEnv(t)
	env.seedUser(t, "employee@acme.test", models.RoleEmployee)
	token := env.login(t, "employee@acme.test")

	recorder := env.request(t, http.MethodGet, "/api/companies", token, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.request(t, http.MethodGet, "/api/departments", token, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.request(t, http.MethodPost, "/api/departments", token, gin.H{"companyId": "3f6c2a44-0000-0000-0000-000000000000", "name": "Eng"})
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = env.request(t, http.MethodGet, "/api/users", token, nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestCrudFlowMaintainsCounters(t *testing.T) {
	env := setupTestEnv(t)
	env.seedUser(t, "admin@acme.test", models.RoleAdmin)
	token := env.login(t, "admin@acme.test")

	recorder := env.request(t, http.MethodPost, "/api/companies", token, gin.H{"name": "Acme"})
	require.Equal(t, http.StatusCreated, recorder.Code)
	companyID := decodeBody(t, recorder)["id"].(string)

	recorder = env.request(t, http.MethodPost, "/api/departments", token, gin.H{"companyId": companyID, "name": "Eng"})
	require.Equal(t, http.StatusCreated, recorder.Code)
	departmentID := decodeBody(t, recorder)["id"].(string)

	recorder = env.request(t, http.MethodPost, "/api/employees", token, gin.H{
		"companyId":    companyID,
		"departmentId": departmentID,
		"name":         "Jordan Smith",
		"email":        "jordan@acme.test",
		"mobileNumber": "+201234567890",
		"designation":  "Software Engineer",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	employee := decodeBody(t, recorder)
	assert.Equal(t, "application_received", employee["status"])
	assert.Nil(t, employee["hiredOn"])

	recorder = env.request(t, http.MethodGet, "/api/companies/"+companyID, token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	company := decodeBody(t, recorder)
	assert.Equal(t, float64(1), company["numDepartments"])
	assert.Equal(t, float64(1), company["numEmployees"])

	recorder = env.request(t, http.MethodDelete, "/api/departments/"+departmentID, token, nil)
	require.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = env.request(t, http.MethodGet, "/api/companies/"+companyID, token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	company = decodeBody(t, recorder)
	assert.Equal(t, float64(0), company["numDepartments"])
	assert.Equal(t, float64(0), company["numEmployees"])
}

func TestCrossCompanyEmployeeRejectedOverHTTP(t *testing.T) {
	env := setupTestEnv(t)
	env.seedUser(t, "admin@acme.test", models.RoleAdmin)
	token := env.login(t, "admin@acme.test")

	recorder := env.request(t, http.MethodPost, "/api/companies", token, gin.H{"name": "Acme"})
	require.Equal(t, http.StatusCreated, recorder.Code)
	acmeID := decodeBody(t, recorder)["id"].(string)

	recorder = env.request(t, http.MethodPost, "/api/companies", token, gin.H{"name": "Globex"})
	require.Equal(t, http.StatusCreated, recorder.Code)
	globexID := decodeBody(t, recorder)["id"].(string)

	recorder = env.request(t, http.MethodPost, "/api/departments", token, gin.H{"companyId": acmeID, "name": "Eng"})
	require.Equal(t, http.StatusCreated, recorder.Code)
	departmentID := decodeBody(t, recorder)["id"].(string)

	recorder = env.request(t, http.MethodPost, "/api/employees", token, gin.H{
		"companyId":    globexID,
		"departmentId": departmentID,
		"name":         "Jordan Smith",
		"email":        "jordan@globex.test",
		"mobileNumber": "+201234567890",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = env.request(t, http.MethodGet, "/api/employees", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var employees []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &employees))
	assert.Empty(t, employees)
}

func TestDuplicateNamesAreFieldValidationErrors(t *testing.T) {
	env := setupTestEnv(t)
	env.seedUser(t, "admin@acme.test", models.RoleAdmin)
	token := env.login(t, "admin@acme.test")

	recorder := env.request(t, http.MethodPost, "/api/companies", token, gin.H{"name": "Acme"})
	require.Equal(t, http.StatusCreated, recorder.Code)
	companyID := decodeBody(t, recorder)["id"].(string)

	recorder = env.request(t, http.MethodPost, "/api/companies", token, gin.H{"name": "Acme"})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	fields := decodeBody(t, recorder)["fields"].(map[string]any)
	assert.Equal(t, "already exists", fields["name"])

	recorder = env.request(t, http.MethodPost, "/api/departments", token, gin.H{"companyId": companyID, "name": "Eng"})
	require.Equal(t, http.StatusCreated, recorder.Code)
	departmentID := decodeBody(t, recorder)["id"].(string)

	recorder = env.request(t, http.MethodPost, "/api/departments", token, gin.H{"companyId": companyID, "name": "Eng"})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	fields = decodeBody(t, recorder)["fields"].(map[string]any)
	assert.Equal(t, "already exists", fields["name"])

	payload := gin.H{
		"companyId":    companyID,
		"departmentId": departmentID,
		"name":         "Jordan Smith",
		"email":        "jordan@acme.test",
		"mobileNumber": "+201234567890",
	}
	recorder = env.request(t, http.MethodPost, "/api/employees", token, payload)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = env.request(t, http.MethodPost, "/api/employees", token, payload)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	fields = decodeBody(t, recorder)["fields"].(map[string]any)
	assert.Equal(t, "already exists", fields["email"])
}

func TestCompanyNotFound(t *testing.T) {
	env := setupTestEnv(t)
	env.seedUser(t, "admin@acme.test", models.RoleAdmin)
	token := env.login(t, "admin@acme.test")

	recorder := env.request(t, http.MethodGet, "/api/companies/3f6c2a44-0000-0000-0000-000000000000", token, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestUserSelfAccessOverride(t *testing.T) {
	env := setupTestEnv(t)
	env.seedUser(t, "admin@acme.test", models.RoleAdmin)
	env.seedUser(t, "employee@acme.test", models.RoleEmployee)

	adminToken := env.login(t, "admin@acme.test")
	employeeToken := env.login(t, "employee@acme.test")

	recorder := env.request(t, http.MethodGet, "/api/me", employeeToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	employeeID := decodeBody(t, recorder)["id"].(string)

	recorder = env.request(t, http.MethodGet, "/api/me", adminToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	adminID := decodeBody(t, recorder)["id"].(string)

	// Own record: allowed despite the employee role having no user access.
	recorder = env.request(t, http.MethodGet, "/api/users/"+employeeID, employeeToken, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.request(t, http.MethodPut, "/api/users/"+employeeID, employeeToken, gin.H{"name": "Updated Name"})
	assert.Equal(t, http.StatusOK, recorder.Code)

	// Someone else's record: denied.
	recorder = env.request(t, http.MethodGet, "/api/users/"+adminID, employeeToken, nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	// Role escalation on the own record: denied.
	recorder = env.request(t, http.MethodPut, "/api/users/"+employeeID, employeeToken, gin.H{"role": "admin"})
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	// Admin reads and updates anyone.
	recorder = env.request(t, http.MethodGet, "/api/users/"+employeeID, adminToken, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestPasswordNeverSerialized(t *testing.T) {
	env := setupTestEnv(t)
	env.seedUser(t, "admin@acme.test", models.RoleAdmin)
	token := env.login(t, "admin@acme.test")

	for _, path := range []string{"/api/users", "/api/me"} {
		recorder := env.request(t, http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "password", "%s leaked a credential field", path)
		assert.NotContains(t, recorder.Body.String(), "$2a$", "%s leaked a hash", path)
	}
}

func TestHealthAndBanner(t *testing.T) {
	env := setupTestEnv(t)

	for _, path := range []string{"/", "/api/health"} {
		recorder := env.request(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, recorder.Code, fmt.Sprintf("GET %s", path))
	}
}

func TestSummaryEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	env.seedUser(t, "admin@acme.test", models.RoleAdmin)
	token := env.login(t, "admin@acme.test")

	recorder := env.request(t, http.MethodPost, "/api/companies", token, gin.H{"name": "Acme"})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = env.request(t, http.MethodGet, "/api/summary", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	summary := decodeBody(t, recorder)
	assert.Equal(t, float64(1), summary["companies"])
	assert.Equal(t, float64(0), summary["employees"])
}

func TestCORSVariesOnOriginForRestrictedList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.SessionToken{}))

	router := gin.New()
	Register(router, db, config.Config{AllowedOriginsRaw: "https://app.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://app.example.com")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, "https://app.example.com", recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", recorder.Header().Get("Vary"))

	// Caches must still key on Origin when the request origin is rejected.
	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", recorder.Header().Get("Vary"))
}
