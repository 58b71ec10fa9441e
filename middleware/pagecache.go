package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"zhihuer/config"
	"zhihuer/dao/cache"

	"github.com/gin-gonic/gin"
)

// sessionCookie 带会话 cookie 的请求视同登录用户，不走整页缓存
const sessionCookie = "zhihuer_session"

// PageCache 匿名整页缓存。只缓存无参数的 GET 页面，
// 带登录态的请求直接透传，保证登录用户永远看到实时内容。
type PageCache struct {
	Conf  *config.Config
	Cache cache.Cache
}

type cachedPage struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

func (p *PageCache) cacheable(c *gin.Context) bool {
	if c.Request.Method != http.MethodGet {
		return false
	}
	if c.Request.URL.RawQuery != "" {
		return false
	}
	if c.GetHeader("Authorization") != "" {
		return false
	}
	if _, err := c.Cookie(sessionCookie); err == nil {
		return false
	}
	return true
}

func (p *PageCache) Serve() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !p.cacheable(c) {
			c.Next()
			return
		}

		key := cache.KeyPage(c.Request.URL.Path)
		if raw, hit, _ := p.Cache.Get(c.Request.Context(), key); hit {
			var page cachedPage
			if err := json.Unmarshal(raw, &page); err == nil {
				pageCacheHitsTotal.WithLabelValues("hit").Inc()
				c.Data(page.Status, page.ContentType, page.Body)
				c.Abort()
				return
			}
			// 缓存内容解不开，当 miss 处理
			_ = p.Cache.Invalidate(c.Request.Context(), key)
		}
		pageCacheHitsTotal.WithLabelValues("miss").Inc()

		rec := &pageRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		// 只缓存成功响应，错误页每次现算
		if rec.Status() != http.StatusOK {
			return
		}
		raw, err := json.Marshal(cachedPage{
			Status:      rec.Status(),
			ContentType: rec.Header().Get("Content-Type"),
			Body:        rec.body.Bytes(),
		})
		if err != nil {
			return
		}
		_ = p.Cache.Set(c.Request.Context(), key, raw, p.Conf.Cache.PageTTL())
	}
}

// ExpirePage 页面内容变更后主动清掉对应缓存
func (p *PageCache) ExpirePage(ctx context.Context, path string) {
	_ = p.Cache.Invalidate(ctx, cache.KeyPage(path))
}

// pageRecorder 旁路记一份响应体，写出行为不变
type pageRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *pageRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *pageRecorder) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}
