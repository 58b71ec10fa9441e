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

type Question struct {
	Config          *config.Config
	QuestionService service.IQuestionService
}

func (h *Question) RegisterRouter(r gin.IRouter) {
	g := r.Group("/question")
	g.GET("/:id", context.Wrap(h.Detail))
	g.GET("/:id/best_answer", context.Wrap(h.BestAnswer))

	authorized := g.Group("")
	authorized.Use(middleware.Auth([]byte(h.Config.Jwt.Secret)))
	authorized.POST("", context.Wrap(h.Create))
	authorized.DELETE("/:id", context.Wrap(h.Delete))
}

// Detail 问题详情，sort 可选 by_votes / by_time，默认按赞排序
func (h *Question) Detail(c *gin.Context) error {
	questionID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	sort := types.AnswerSort(c.DefaultQuery("sort", string(types.SortByVotes)))

	detail, err := h.QuestionService.GetQuestionDetail(c.Request.Context(), questionID, sort, parsePageNum(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return response.NewError(http.StatusNotFound, "问题不存在")
		case errors.Is(err, service.ErrUnknownSort):
			return response.NewError(http.StatusBadRequest, err.Error())
		}
		return err
	}
	response.Success(c, detail)
	return nil
}

// BestAnswer 获赞最多的回答，问题还没有回答时 data 为空
func (h *Question) BestAnswer(c *gin.Context) error {
	questionID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	best, err := h.QuestionService.BestAnswer(c.Request.Context(), questionID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.NewError(http.StatusNotFound, "问题不存在")
		}
		return err
	}
	response.Success(c, best)
	return nil
}

func (h *Question) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	question, err := h.QuestionService.CreateQuestion(c.Request.Context(), userID, req.Title, req.Content, req.IsAnonymous, req.TopicIDs)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"id": question.ID})
	return nil
}

func (h *Question) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	questionID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.QuestionService.DeleteQuestion(c.Request.Context(), userID, questionID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return response.NewError(http.StatusNotFound, "问题不存在")
		case errors.Is(err, service.ErrNotOwner):
			return response.NewError(http.StatusForbidden, err.Error())
		}
		return err
	}
	response.Success(c, "已删除")
	return nil
}
