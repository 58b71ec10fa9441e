package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"zhihuer/config"
	"zhihuer/dao"
	"zhihuer/models"
	"zhihuer/pkg/jwt"
	"zhihuer/pkg/mail"
	"zhihuer/pkg/snowflake"
	"zhihuer/types"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *types.LoginRequest) (string, error)
	ConfirmEmail(ctx context.Context, token string) error
	GetProfile(ctx context.Context, userID uint64) (*types.UserProfile, error)
	DeleteAccount(ctx context.Context, userID uint64) error
}

type UserService struct {
	Conf            *config.Config
	Mail            *mail.Sender
	UserDAO         *dao.Users
	RelationshipDAO *dao.Relationships
}

// Register 注册后异步发确认邮件，邮件发成没成不影响注册结果
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error) {
	if s.UserDAO.IsUsernameExist(ctx, req.Username) {
		return nil, ErrUsernameTaken
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:        uint64(snowflake.GenID()),
		Username:  req.Username,
		Nickname:  req.Username,
		Email:     req.Email,
		Password:  string(hashed),
		CreatedAt: time.Now(),
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}
	s.sendConfirmMail(user)
	return user, nil
}

func (s *UserService) sendConfirmMail(user *models.User) {
	expire := 24 * time.Hour
	if s.Conf.Jwt.ConfirmExpire > 0 {
		expire = time.Duration(s.Conf.Jwt.ConfirmExpire) * time.Second
	}
	token, err := jwt.GenerateToken([]byte(s.Conf.Jwt.Secret), user.ID, jwt.TypeConfirm, expire)
	if err != nil {
		return
	}
	link := fmt.Sprintf("%s/user/confirm/%s", s.Conf.App.SiteURL, token)
	body := fmt.Sprintf("<p>点击链接完成注册确认, 链接 24 小时内有效:</p><p><a href=%q>%s</a></p>", link, link)
	s.Mail.SendAsync(user.Email, "确认你的账号", body)
}

func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (string, error) {
	user, err := s.UserDAO.FindByUsername(ctx, req.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", ErrBadCredentials
	}
	expire := time.Duration(s.Conf.Jwt.AccessExpire) * time.Second
	if expire <= 0 {
		expire = 2 * time.Hour
	}
	return jwt.GenerateToken([]byte(s.Conf.Jwt.Secret), user.ID, jwt.TypeAccess, expire)
}

// ConfirmEmail 确认链接里的 token 换成已确认状态。
// token 过期或类型不对直接报错，不暴露细节。
func (s *UserService) ConfirmEmail(ctx context.Context, token string) error {
	claims, err := jwt.ParseToken([]byte(s.Conf.Jwt.Secret), jwt.TypeConfirm, token)
	if err != nil {
		return ErrBadCredentials
	}
	user, err := s.UserDAO.FindById(ctx, claims.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if user.Confirmed {
		return nil
	}
	return s.UserDAO.UpdateById(ctx, user.ID, map[string]any{"confirmed": true})
}

func (s *UserService) GetProfile(ctx context.Context, userID uint64) (*types.UserProfile, error) {
	user, err := s.UserDAO.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	followers, err := s.RelationshipDAO.Count(ctx, "followed_id = ?", userID)
	if err != nil {
		return nil, err
	}
	following, err := s.RelationshipDAO.Count(ctx, "follower_id = ?", userID)
	if err != nil {
		return nil, err
	}
	return &types.UserProfile{
		ID:            user.ID,
		Username:      user.Username,
		Nickname:      user.Nickname,
		Gender:        user.Gender,
		Address:       user.Address,
		Description:   user.Description,
		Avatar:        user.Avatar,
		Confirmed:     user.Confirmed,
		CreatedAt:     user.CreatedAt,
		FollowerNums:  followers,
		FollowingNums: following,
	}, nil
}

// DeleteAccount 注销账号。问题和回答不删，
// 作者改挂到占位账号上，内容继续可见。
func (s *UserService) DeleteAccount(ctx context.Context, userID uint64) error {
	user, err := s.UserDAO.FindById(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	sentinel, err := s.UserDAO.GetOrCreateSentinel(ctx)
	if err != nil {
		return err
	}
	return s.UserDAO.DeleteWithSentinel(ctx, userID, sentinel.ID)
}
