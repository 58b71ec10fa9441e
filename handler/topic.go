package handler

import (
	"errors"
	"net/http"

	"zhihuer/pkg/context"
	"zhihuer/pkg/response"
	"zhihuer/service"
	"zhihuer/types"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	TopicService service.ITopicService
}

func (h *TopicHandler) RegisterRouter(r gin.IRouter) {
	g := r.Group("/topic")
	g.GET("", context.Wrap(h.List))
	g.GET("/:id", context.Wrap(h.Detail))
}

func (h *TopicHandler) List(c *gin.Context) error {
	topics, err := h.TopicService.ListTopics(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, topics)
	return nil
}

// Detail 话题详情，filter 可选 all / wonderful，默认全部
func (h *TopicHandler) Detail(c *gin.Context) error {
	topicID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	filter := types.TopicFilter(c.DefaultQuery("filter", string(types.FilterAll)))

	detail, err := h.TopicService.GetTopicDetail(c.Request.Context(), topicID, filter, parsePageNum(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return response.NewError(http.StatusNotFound, "话题不存在")
		case errors.Is(err, service.ErrUnknownFilter):
			return response.NewError(http.StatusBadRequest, err.Error())
		}
		return err
	}
	response.Success(c, detail)
	return nil
}
