package handler

import (
	"errors"
	"net/http"

	"zhihuer/config"
	"zhihuer/middleware"
	"zhihuer/pkg/context"
	"zhihuer/pkg/response"
	"zhihuer/service"
	"zhihuer/types"

	"github.com/gin-gonic/gin"
)

type Answer struct {
	Config        *config.Config
	AnswerService service.IAnswerService
}

func (h *Answer) RegisterRouter(r gin.IRouter) {
	r.GET("/home", context.Wrap(h.Home))

	authorized := r.Group("/answer")
	authorized.Use(middleware.Auth([]byte(h.Config.Jwt.Secret)))
	authorized.POST("", context.Wrap(h.Create))
}

// Home 首页回答流
func (h *Answer) Home(c *gin.Context) error {
	feed, err := h.AnswerService.GetHomeFeed(c.Request.Context(), parsePageNum(c))
	if err != nil {
		return err
	}
	response.Success(c, feed)
	return nil
}

func (h *Answer) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	answer, err := h.AnswerService.CreateAnswer(c.Request.Context(), userID, req.QuestionID, req.Content, req.IsAnonymous)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.NewError(http.StatusNotFound, "问题不存在")
		}
		return err
	}
	response.Success(c, gin.H{"id": answer.ID})
	return nil
}
