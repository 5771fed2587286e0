package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/tutor-contacts/internal/config"
	"github.com/BruksfildServices01/tutor-contacts/internal/models"
)

func newAuthRouter(t *testing.T, domainOK bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, gdb.AutoMigrate(&models.User{}))

	h := NewAuthHandler(gdb, &config.Config{JWTSecret: "test"})
	h.checkDomain = func(string) bool { return domainOK }

	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	r := newAuthRouter(t, true)

	w := postJSON(r, "/register", gin.H{"name": "Tutor", "email": "Tutor@Example.com", "password": "secret123"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var out struct {
		User  struct{ Email string } `json:"user"`
		Token string                 `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "tutor@example.com", out.User.Email)

	tok, err := jwt.Parse(out.Token, func(*jwt.Token) (any, error) { return []byte("test"), nil })
	require.NoError(t, err)
	sub, _ := tok.Claims.(jwt.MapClaims)["sub"].(float64)
	assert.Positive(t, sub)

	w = postJSON(r, "/register", gin.H{"name": "Again", "email": "tutor@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = postJSON(r, "/login", gin.H{"email": "tutor@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(r, "/login", gin.H{"email": "tutor@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	r := newAuthRouter(t, false)

	w := postJSON(r, "/register", gin.H{"name": "Tutor", "email": "tutor@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_email_domain")

	w = postJSON(r, "/register", gin.H{"name": "Tutor", "email": "tutor@example.com", "password": "123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_request")
}

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x/:id", func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	for path, status := range map[string]int{"/x/12": 200, "/x/0": 400, "/x/-1": 400, "/x/abc": 400} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, status, w.Code, path)
	}
}
