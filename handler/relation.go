package handler

import (
	stdctx "context"
	"errors"
	"net/http"
	"strconv"

	"zhihuer/config"
	"zhihuer/middleware"
	"zhihuer/pkg/context"
	"zhihuer/pkg/response"
	"zhihuer/service"
	"zhihuer/types"

	"github.com/gin-gonic/gin"
)

// Relation 开关型交互和交互计数
type Relation struct {
	Config           *config.Config
	ToggleService    service.IToggleService
	AggregateService service.IAggregateService
	PageCache        *middleware.PageCache
}

func (h *Relation) RegisterRouter(r gin.IRouter) {
	g := r.Group("/relation")
	g.GET("/count", context.Wrap(h.Count))

	authorized := g.Group("")
	authorized.Use(middleware.Auth([]byte(h.Config.Jwt.Secret)))
	authorized.POST("/answer/:id/vote", context.Wrap(h.toggle(h.ToggleService.ToggleFollowAnswer)))
	authorized.POST("/answer/:id/collect", context.Wrap(h.toggle(h.ToggleService.ToggleCollectAnswer)))
	authorized.POST("/question/:id/follow", context.Wrap(h.toggle(h.ToggleService.ToggleFollowQuestion)))
	authorized.POST("/topic/:id/follow", context.Wrap(h.toggle(h.toggleFollowTopic)))
	authorized.POST("/user/:id/follow", context.Wrap(h.toggle(h.ToggleService.ToggleFollowUser)))
}

// toggle 五个开关路由只差一个服务方法，这里收拢成一个出口
func (h *Relation) toggle(do func(ctx stdctx.Context, userID, objectID uint64) (*types.ToggleResult, error)) func(*gin.Context) error {
	return func(c *gin.Context) error {
		userID, err := context.GetUserID(c)
		if err != nil {
			return response.NewError(http.StatusUnauthorized, "未登录")
		}
		objectID, err := parseID(c, "id")
		if err != nil {
			return err
		}

		result, err := do(c.Request.Context(), userID, objectID)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return response.NewError(http.StatusNotFound, "对象不存在")
			case errors.Is(err, service.ErrSelfFollow):
				return response.NewError(http.StatusBadRequest, err.Error())
			}
			return err
		}
		response.Success(c, result)
		return nil
	}
}

// toggleFollowTopic 话题关注数变了，匿名话题列表页的整页缓存跟着失效
func (h *Relation) toggleFollowTopic(ctx stdctx.Context, userID, objectID uint64) (*types.ToggleResult, error) {
	result, err := h.ToggleService.ToggleFollowTopic(ctx, userID, objectID)
	if err != nil {
		return nil, err
	}
	h.PageCache.ExpirePage(ctx, "/api/topic")
	return result, nil
}

// Count 按交互类型数某个对象的交互条数
func (h *Relation) Count(c *gin.Context) error {
	kind := service.InteractionKind(c.Query("kind"))
	objectID, err := strconv.ParseUint(c.Query("object_id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "非法的 object_id")
	}

	count, err := h.AggregateService.CountInteractions(c.Request.Context(), kind, objectID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownInteraction) {
			return response.NewError(http.StatusBadRequest, err.Error())
		}
		return err
	}
	response.Success(c, gin.H{"count": count})
	return nil
}
