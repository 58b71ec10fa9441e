package service

import (
	"context"

	"zhihuer/dao"
	"zhihuer/models"
	"zhihuer/types"
)

// AnswerAssembler 把回答实体攒成展示结构:
// 实时补上获赞数、评论数和作者信息。匿名回答不带作者。
type AnswerAssembler struct {
	UserDAO         *dao.Users
	CommentDAO      *dao.Comments
	FollowAnswerDAO *dao.FollowAnswers
}

func (as *AnswerAssembler) Items(ctx context.Context, answers []*models.Answer) ([]types.AnswerItem, error) {
	if len(answers) == 0 {
		return []types.AnswerItem{}, nil
	}
	answerIDs := make([]uint64, 0, len(answers))
	for _, a := range answers {
		answerIDs = append(answerIDs, a.ID)
	}
	votes, err := as.FollowAnswerDAO.CountByAnswers(ctx, answerIDs)
	if err != nil {
		return nil, err
	}
	return as.ItemsWithVotes(ctx, answers, votes)
}

// ItemsWithVotes 获赞数已经算好时用这个入口，不再重复查
func (as *AnswerAssembler) ItemsWithVotes(ctx context.Context, answers []*models.Answer, votes map[uint64]int64) ([]types.AnswerItem, error) {
	if len(answers) == 0 {
		return []types.AnswerItem{}, nil
	}

	answerIDs := make([]uint64, 0, len(answers))
	authorIDs := make([]uint64, 0, len(answers))
	for _, a := range answers {
		answerIDs = append(answerIDs, a.ID)
		if !a.IsAnonymous {
			authorIDs = append(authorIDs, a.AuthorID)
		}
	}

	comments, err := as.CommentDAO.CountByAnswers(ctx, answerIDs)
	if err != nil {
		return nil, err
	}

	users, err := as.UserDAO.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	userMap := make(map[uint64]*models.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}

	items := make([]types.AnswerItem, 0, len(answers))
	for _, a := range answers {
		item := types.AnswerItem{
			ID:          a.ID,
			QuestionID:  a.QuestionID,
			IsAnonymous: a.IsAnonymous,
			Content:     a.Content,
			PubTime:     a.PubTime,
			VoteNums:    votes[a.ID],
			CommentNums: comments[a.ID],
		}
		if !a.IsAnonymous {
			if u, ok := userMap[a.AuthorID]; ok {
				item.Author = types.UserBrief{ID: u.ID, Nickname: u.Nickname, Avatar: u.Avatar}
			}
		}
		items = append(items, item)
	}
	return items, nil
}
