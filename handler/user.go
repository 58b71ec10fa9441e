package handler

import (
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

type User struct {
	Config      *config.Config
	UserService service.IUserService
	FeedService service.IFeedService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	g := r.Group("/user")
	g.POST("/register", context.Wrap(u.Register))
	g.POST("/login", context.Wrap(u.Login))
	g.GET("/confirm/:token", context.Wrap(u.Confirm))
	g.GET("/profile/:id", context.Wrap(u.Profile))
	g.GET("/feed/:id", context.Wrap(u.Feed))

	authorized := g.Group("")
	authorized.Use(middleware.Auth([]byte(u.Config.Jwt.Secret)))
	authorized.DELETE("", context.Wrap(u.DeleteAccount))
}

func (u *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	user, err := u.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			return response.NewError(http.StatusConflict, err.Error())
		}
		return err
	}
	response.Success(c, gin.H{"id": user.ID})
	return nil
}

func (u *User) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	token, err := u.UserService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			return response.NewError(http.StatusUnauthorized, err.Error())
		}
		return err
	}
	response.Success(c, gin.H{"token": token})
	return nil
}

func (u *User) Confirm(c *gin.Context) error {
	if err := u.UserService.ConfirmEmail(c.Request.Context(), c.Param("token")); err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			return response.NewError(http.StatusBadRequest, "确认链接无效或已过期")
		}
		return err
	}
	response.Success(c, "确认成功")
	return nil
}

func (u *User) Profile(c *gin.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	profile, err := u.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.NewError(http.StatusNotFound, "用户不存在")
		}
		return err
	}
	response.Success(c, profile)
	return nil
}

func (u *User) Feed(c *gin.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	items, err := u.FeedService.ComposeUserFeed(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.NewError(http.StatusNotFound, "用户不存在")
		}
		return err
	}
	response.Success(c, types.UserFeedResponse{Items: items})
	return nil
}

func (u *User) DeleteAccount(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	if err := u.UserService.DeleteAccount(c.Request.Context(), userID); err != nil {
		return err
	}
	response.Success(c, "账号已注销")
	return nil
}

// parseID 路径参数里的实体ID
func parseID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, response.NewError(http.StatusBadRequest, "非法的ID")
	}
	return id, nil
}

// parsePageNum 页码参数，缺省第一页
func parsePageNum(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
