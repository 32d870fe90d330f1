package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/hvndev/devhub-api/internal/constants"
	"github.com/hvndev/devhub-api/internal/database"
	"github.com/hvndev/devhub-api/internal/dto"
	"github.com/hvndev/devhub-api/internal/models"
	"github.com/hvndev/devhub-api/internal/repository"
	"github.com/hvndev/devhub-api/internal/services"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db          *gorm.DB
	handler     *AuthHandler
	authService *services.AuthService
	router      *gin.Engine
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{})
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo)
	handler := NewAuthHandler(authService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.POST("/cadastro", handler.Register)
	r.POST("/login", handler.Login)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		handler:     handler,
		authService: authService,
		router:      r,
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	return doJSON(t, r, http.MethodPost, path, payload)
}

func putJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	return doJSON(t, r, http.MethodPut, path, payload)
}

func deleteJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	return doJSON(t, r, http.MethodDelete, path, payload)
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/cadastro", map[string]string{
		"nome":  "Ana",
		"email": "ana@example.com",
		"senha": "supersecret",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Ana", response.Name)
	require.NotZero(t, response.ID)

	var stored models.User
	require.NoError(t, env.db.First(&stored, response.ID).Error)
	require.NotEqual(t, "supersecret", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("supersecret")))
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/cadastro", map[string]string{
		"nome":  "Ana",
		"email": "ana@example.com",
		"senha": "supersecret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, env.router, "/cadastro", map[string]string{
		"nome":  "Outra Ana",
		"email": "ana@example.com",
		"senha": "differentsecret",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	// First registration survives untouched
	var users []models.User
	require.NoError(t, env.db.Where("email = ?", "ana@example.com").Find(&users).Error)
	require.Len(t, users, 1)
	require.Equal(t, "Ana", users[0].Name)
}

func TestAuthHandler_Register_MissingField(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/cadastro", map[string]string{
		"nome":  "Ana",
		"senha": "supersecret",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestAuthHandler_Register_MalformedJSON(t *testing.T) {
	env := setupAuthTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/cadastro", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Register(services.RegisterInput{
		Name:     "Bruno",
		Email:    "bruno@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	w := postJSON(t, env.router, "/login", map[string]string{
		"email": "bruno@example.com",
		"senha": "supersecret",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.ID, response.ID)
	require.Equal(t, "Bruno", response.Name)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
}

func TestAuthHandler_Login_InvalidCredentialsAreIndistinguishable(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(services.RegisterInput{
		Name:     "Bruno",
		Email:    "bruno@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	wrongPassword := postJSON(t, env.router, "/login", map[string]string{
		"email": "bruno@example.com",
		"senha": "wrong",
	})
	unknownEmail := postJSON(t, env.router, "/login", map[string]string{
		"email": "nobody@example.com",
		"senha": "supersecret",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	require.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String(),
		"wrong password and unknown email must be indistinguishable")
}
