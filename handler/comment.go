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

type CommentHandler struct {
	Config         *config.Config
	CommentService service.ICommentService
}

func (h *CommentHandler) RegisterRouter(r gin.IRouter) {
	g := r.Group("/answer/:id/comments")
	g.GET("", context.Wrap(h.List))

	authorized := g.Group("")
	authorized.Use(middleware.Auth([]byte(h.Config.Jwt.Secret)))
	authorized.POST("", context.Wrap(h.Add))
}

func (h *CommentHandler) List(c *gin.Context) error {
	answerID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	list, err := h.CommentService.ListComments(c.Request.Context(), answerID, parsePageNum(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.NewError(http.StatusNotFound, "回答不存在")
		}
		return err
	}
	response.Success(c, list)
	return nil
}

func (h *CommentHandler) Add(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	answerID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req types.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	comment, err := h.CommentService.AddComment(c.Request.Context(), userID, answerID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.NewError(http.StatusNotFound, "回答不存在")
		}
		return err
	}
	response.Success(c, gin.H{"id": comment.ID})
	return nil
}
