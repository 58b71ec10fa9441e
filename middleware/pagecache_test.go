package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"zhihuer/config"
	"zhihuer/dao/cache"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newPageCacheRouter(t *testing.T) (*gin.Engine, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	p := &PageCache{
		Conf:  &config.Config{Cache: &config.Cache{}},
		Cache: cache.NewMemoryCache(16),
	}

	hits := 0
	r := gin.New()
	r.Use(p.Serve())
	r.GET("/explore", func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"n": hits})
	})
	r.GET("/broken", func(c *gin.Context) {
		hits++
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "boom"})
	})
	r.POST("/explore", func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"n": hits})
	})
	return r, &hits
}

func TestPageCacheServesSecondRequestFromCache(t *testing.T) {
	r, hits := newPageCacheRouter(t)

	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/explore", nil))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/explore", nil))

	assert.Equal(t, 1, *hits)
	assert.Equal(t, w1.Body.String(), w2.Body.String())
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestPageCacheBypassesAuthorizedRequests(t *testing.T) {
	r, hits := newPageCacheRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/explore", nil)
	req.Header.Set("Authorization", "Bearer token")
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), req)

	// 登录用户每次都现算
	assert.Equal(t, 2, *hits)
}

func TestPageCacheBypassesSessionCookie(t *testing.T) {
	r, hits := newPageCacheRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/explore", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "s"})
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, 2, *hits)
}

func TestPageCacheBypassesQueryString(t *testing.T) {
	r, hits := newPageCacheRouter(t)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/explore?page=2", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/explore?page=2", nil))

	assert.Equal(t, 2, *hits)
}

func TestPageCacheBypassesNonGet(t *testing.T) {
	r, hits := newPageCacheRouter(t)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/explore", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/explore", nil))

	assert.Equal(t, 2, *hits)
}

func TestPageCacheExpirePage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	p := &PageCache{
		Conf:  &config.Config{Cache: &config.Cache{}},
		Cache: cache.NewMemoryCache(16),
	}

	hits := 0
	r := gin.New()
	r.Use(p.Serve())
	r.GET("/topic", func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"n": hits})
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/topic", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/topic", nil))
	assert.Equal(t, 1, hits)

	// 主动失效后下一次请求现算
	p.ExpirePage(context.Background(), "/topic")
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/topic", nil))
	assert.Equal(t, 2, hits)
}

func TestPageCacheSkipsErrorResponses(t *testing.T) {
	r, hits := newPageCacheRouter(t)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/broken", nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/broken", nil))

	assert.Equal(t, 2, *hits)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
