package service

import (
	"context"
	"time"

	"zhihuer/dao"
	"zhihuer/models"
	"zhihuer/pkg/snowflake"
	"zhihuer/types"
)

var _ IAnswerService = (*AnswerService)(nil)

type IAnswerService interface {
	GetHomeFeed(ctx context.Context, pageNum int) (*types.HomeFeedResponse, error)
	CreateAnswer(ctx context.Context, userID, questionID uint64, content string, anonymous bool) (*models.Answer, error)
}

type AnswerService struct {
	AnswerDAO   *dao.Answers
	QuestionDAO *dao.Questions
	Assembler   *AnswerAssembler
}

// GetHomeFeed 首页回答流，按发布时间倒序分页
func (s *AnswerService) GetHomeFeed(ctx context.Context, pageNum int) (*types.HomeFeedResponse, error) {
	if pageNum < 1 {
		pageNum = 1
	}
	pageSize := types.DefaultPageSize
	offset := (pageNum - 1) * pageSize

	answers, total, err := s.AnswerDAO.ListNewest(ctx, pageSize, offset)
	if err != nil {
		return nil, err
	}
	items, err := s.Assembler.Items(ctx, answers)
	if err != nil {
		return nil, err
	}
	return &types.HomeFeedResponse{
		Answers: items,
		Page: types.Page{
			PageNum:  pageNum,
			PageSize: pageSize,
			Total:    total,
			HasMore:  int64(offset+len(answers)) < total,
		},
	}, nil
}

func (s *AnswerService) CreateAnswer(ctx context.Context, userID, questionID uint64, content string, anonymous bool) (*models.Answer, error) {
	question, err := s.QuestionDAO.FindById(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrNotFound
	}
	answer := &models.Answer{
		ID:          uint64(snowflake.GenID()),
		QuestionID:  questionID,
		AuthorID:    userID,
		Content:     content,
		PubTime:     time.Now(),
		IsAnonymous: anonymous,
	}
	if err := s.AnswerDAO.Create(ctx, answer); err != nil {
		return nil, err
	}
	return answer, nil
}
