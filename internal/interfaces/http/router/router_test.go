package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func TestRouter_DefaultVersion(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	r := NewRouter(engine)
	r.Register(NewDomainGroup("clients", "/clients").GET("", okHandler))
	r.Setup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/clients", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_CustomVersion(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	r := NewRouter(engine, WithAPIVersion("v2"))
	r.Register(NewDomainGroup("clients", "/clients").GET("", okHandler))
	r.Setup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v2/clients", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/clients", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Use(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	called := false
	r := NewRouter(engine)
	r.Use(func(c *gin.Context) {
		called = true
		c.Next()
	})
	r.Register(NewDomainGroup("clients", "/clients").GET("", okHandler))
	r.Setup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/clients", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestDomainGroup_Methods(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	group := NewDomainGroup("plans", "/plans").
		GET("", okHandler).
		POST("", okHandler).
		PUT("/:id", okHandler).
		DELETE("/:id", okHandler)

	NewRouter(engine).Register(group).Setup()

	for _, tt := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/plans"},
		{http.MethodPost, "/api/v1/plans"},
		{http.MethodPut, "/api/v1/plans/123"},
		{http.MethodDelete, "/api/v1/plans/123"},
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(tt.method, tt.path, nil)
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, tt.method+" "+tt.path)
	}
}

func TestDomainGroup_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	gated := NewDomainGroup("users", "/users").
		Use(func(c *gin.Context) {
			c.AbortWithStatus(http.StatusForbidden)
		}).
		GET("", okHandler)
	open := NewDomainGroup("system", "/system").GET("/ping", okHandler)

	NewRouter(engine).Register(gated).Register(open).Setup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/users", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/system/ping", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDomainGroup_Subgroup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	reports := NewDomainGroup("reports", "/reports")
	reports.Group("check-ins", "/check-ins").GET("/daily-trend", okHandler)

	NewRouter(engine).Register(reports).Setup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/check-ins/daily-trend", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDomainGroup_Accessors(t *testing.T) {
	group := NewDomainGroup("clients", "/clients")
	assert.Equal(t, "clients", group.Name())
	assert.Equal(t, "/clients", group.Prefix())
}
