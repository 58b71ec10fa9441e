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

type SearchHandler struct {
	SearchService service.ISearchService
}

func (h *SearchHandler) RegisterRouter(r gin.IRouter) {
	r.GET("/search", context.Wrap(h.Search))
}

func (h *SearchHandler) Search(c *gin.Context) error {
	var req types.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	result, err := h.SearchService.Search(c.Request.Context(), types.SearchKind(req.Kind), req.Keywords)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownKind), errors.Is(err, service.ErrKeywordTooLong):
			return response.NewError(http.StatusBadRequest, err.Error())
		}
		return err
	}
	response.Success(c, result)
	return nil
}
