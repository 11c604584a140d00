package testutils

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/tatiadventure/household-server/internal/api"
	"github.com/tatiadventure/household-server/internal/config"
	"github.com/tatiadventure/household-server/internal/models"
	"github.com/tatiadventure/household-server/internal/repository"
	"github.com/tatiadventure/household-server/internal/service"
)

// TestContext holds all dependencies for tests
type TestContext struct {
	Router        *gin.Engine
	Repository    repository.Repository
	Service       service.Service
	DB            *sqlx.DB
	TestUserID    int64
	SessionCookie string // "session=<token>" for the pre-created test user
}

// SetupTestContext creates a new test context backed by an in-memory SQLite
// database, with the schema bootstrapped and one registered test user.
func SetupTestContext(t *testing.T) *TestContext {
	gin.SetMode(gin.TestMode)

	cfg := config.LoadConfig()
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.Path = ":memory:"
	cfg.Auth.SessionSecret = "test-secret-key"

	db, err := config.SetupDatabase(cfg)
	require.NoError(t, err, "Failed to set up test database")

	repo := repository.NewSQLRepository(db)
	svc := service.NewDefaultService(repo, cfg.Auth.SessionSecret)
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	userID, cookie := createTestUser(t, svc)

	return &TestContext{
		Router:        router,
		Repository:    repo,
		Service:       svc,
		DB:            repo.GetDB(),
		TestUserID:    userID,
		SessionCookie: cookie,
	}
}

// CleanupTestContext cleans up test resources
func CleanupTestContext(tc *TestContext) {
	if tc.DB != nil {
		tc.DB.Close()
	}
}

// createTestUser registers the standard test user and returns their id along
// with a ready-to-use session cookie.
func createTestUser(t *testing.T, svc service.Service) (int64, string) {
	sess, err := svc.Register(context.Background(), models.RegisterForm{
		FirstName: "Test",
		LastName:  "User",
		Username:  "testuser",
		Password:  "testpassword",
	})
	require.NoError(t, err, "Failed to create test user")

	token, err := svc.IssueSessionToken(sess)
	require.NoError(t, err, "Failed to issue session token")

	return sess.ID, api.SessionCookie + "=" + token
}

// PerformForm executes a form-encoded HTTP request against the router. Pass
// a nil form for plain GETs and an empty cookie for anonymous requests.
func PerformForm(r http.Handler, method, path string, form url.Values, cookie string) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, _ := http.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
