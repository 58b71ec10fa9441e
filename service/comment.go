package service

import (
	"context"
	"time"

	"zhihuer/dao"
	"zhihuer/models"
	"zhihuer/pkg/snowflake"
	"zhihuer/types"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	AddComment(ctx context.Context, userID, answerID uint64, content string) (*models.AnswerComment, error)
	ListComments(ctx context.Context, answerID uint64, pageNum int) (*types.CommentListResponse, error)
}

type CommentService struct {
	UserDAO    *dao.Users
	AnswerDAO  *dao.Answers
	CommentDAO *dao.Comments
}

func (s *CommentService) AddComment(ctx context.Context, userID, answerID uint64, content string) (*models.AnswerComment, error) {
	answer, err := s.AnswerDAO.FindById(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, ErrNotFound
	}
	comment := &models.AnswerComment{
		ID:        uint64(snowflake.GenID()),
		AnswerID:  answerID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments 回答下的评论，按时间正序分页
func (s *CommentService) ListComments(ctx context.Context, answerID uint64, pageNum int) (*types.CommentListResponse, error) {
	answer, err := s.AnswerDAO.FindById(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, ErrNotFound
	}

	if pageNum < 1 {
		pageNum = 1
	}
	pageSize := types.DefaultPageSize
	offset := (pageNum - 1) * pageSize

	comments, err := s.CommentDAO.ListByAnswer(ctx, answerID, pageSize, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.CommentDAO.Count(ctx, "answer_id = ?", answerID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint64, 0, len(comments))
	for _, c := range comments {
		userIDs = append(userIDs, c.UserID)
	}
	users, err := s.UserDAO.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	userMap := make(map[uint64]*models.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}

	items := make([]types.CommentItem, 0, len(comments))
	for _, c := range comments {
		item := types.CommentItem{
			ID:        c.ID,
			AnswerID:  c.AnswerID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		}
		if u, ok := userMap[c.UserID]; ok {
			item.Author = types.UserBrief{ID: u.ID, Nickname: u.Nickname, Avatar: u.Avatar}
		}
		items = append(items, item)
	}

	return &types.CommentListResponse{
		Comments: items,
		Page: types.Page{
			PageNum:  pageNum,
			PageSize: pageSize,
			Total:    total,
			HasMore:  int64(offset+len(comments)) < total,
		},
	}, nil
}
