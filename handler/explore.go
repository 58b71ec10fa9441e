package handler

import (
	"strconv"

	"zhihuer/pkg/context"
	"zhihuer/pkg/response"
	"zhihuer/service"

	"github.com/gin-gonic/gin"
)

type Explore struct {
	ExploreService service.IExploreService
}

func (h *Explore) RegisterRouter(r gin.IRouter) {
	g := r.Group("/explore")
	g.GET("", context.Wrap(h.Page))
	g.GET("/hot_topics", context.Wrap(h.HotTopics))
	g.GET("/hot_questions", context.Wrap(h.HotQuestions))
}

func (h *Explore) Page(c *gin.Context) error {
	page, err := h.ExploreService.GetExplorePage(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, page)
	return nil
}

func (h *Explore) HotTopics(c *gin.Context) error {
	topics, err := h.ExploreService.GetHotTopics(c.Request.Context(), parseLimit(c))
	if err != nil {
		return err
	}
	response.Success(c, topics)
	return nil
}

func (h *Explore) HotQuestions(c *gin.Context) error {
	questions, err := h.ExploreService.GetHotQuestions(c.Request.Context(), parseLimit(c))
	if err != nil {
		return err
	}
	response.Success(c, questions)
	return nil
}

// parseLimit 榜单条数参数，非法值交给服务层套默认值
func parseLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		return 0
	}
	return limit
}
