package service

import (
	"context"

	"zhihuer/dao"
	"zhihuer/dao/cache"
	"zhihuer/types"
)

// IToggleService 用户和内容之间的开关型关系:
// 有这条边就是生效，再点一下就删掉。并发下两次同方向操作
// 结果一致，不加锁。
type IToggleService interface {
	ToggleFollowAnswer(ctx context.Context, userID, answerID uint64) (*types.ToggleResult, error)
	ToggleCollectAnswer(ctx context.Context, userID, answerID uint64) (*types.ToggleResult, error)
	ToggleFollowQuestion(ctx context.Context, userID, questionID uint64) (*types.ToggleResult, error)
	ToggleFollowTopic(ctx context.Context, userID, topicID uint64) (*types.ToggleResult, error)
	ToggleFollowUser(ctx context.Context, userID, targetID uint64) (*types.ToggleResult, error)
}

type ToggleService struct {
	Cache            cache.Cache
	UserDAO          *dao.Users
	QuestionDAO      *dao.Questions
	AnswerDAO        *dao.Answers
	TopicDAO         *dao.Topics
	FollowAnswerDAO  *dao.FollowAnswers
	CollectAnswerDAO *dao.CollectAnswers
	FollowQuestDAO   *dao.FollowQuestions
	FollowTopicDAO   *dao.FollowTopics
	RelationshipDAO  *dao.Relationships
}

var _ IToggleService = (*ToggleService)(nil)

type edgeDAO interface {
	Exists(ctx context.Context, subjectID, objectID uint64) (bool, error)
	Add(ctx context.Context, subjectID, objectID uint64) error
	Remove(ctx context.Context, subjectID, objectID uint64) error
}

// toggle 查一下再写，中间被人抢先了也没关系，
// 唯一索引保证同一条边不会插两次
func toggle(ctx context.Context, d edgeDAO, subjectID, objectID uint64) (*types.ToggleResult, error) {
	exists, err := d.Exists(ctx, subjectID, objectID)
	if err != nil {
		return nil, err
	}
	if exists {
		if err := d.Remove(ctx, subjectID, objectID); err != nil {
			return nil, err
		}
		return &types.ToggleResult{Added: false}, nil
	}
	if err := d.Add(ctx, subjectID, objectID); err != nil {
		return nil, err
	}
	return &types.ToggleResult{Added: true}, nil
}

func (s *ToggleService) ToggleFollowAnswer(ctx context.Context, userID, answerID uint64) (*types.ToggleResult, error) {
	answer, err := s.AnswerDAO.FindById(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, ErrNotFound
	}
	res, err := toggle(ctx, s.FollowAnswerDAO, userID, answerID)
	if err != nil {
		return nil, err
	}
	// 票数变了，问题页的回答排序缓存作废
	_ = s.Cache.Invalidate(ctx, cache.KeyTopAnswers(answer.QuestionID))
	return res, nil
}

func (s *ToggleService) ToggleCollectAnswer(ctx context.Context, userID, answerID uint64) (*types.ToggleResult, error) {
	answer, err := s.AnswerDAO.FindById(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, ErrNotFound
	}
	return toggle(ctx, s.CollectAnswerDAO, userID, answerID)
}

func (s *ToggleService) ToggleFollowQuestion(ctx context.Context, userID, questionID uint64) (*types.ToggleResult, error) {
	question, err := s.QuestionDAO.FindById(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrNotFound
	}
	return toggle(ctx, s.FollowQuestDAO, userID, questionID)
}

func (s *ToggleService) ToggleFollowTopic(ctx context.Context, userID, topicID uint64) (*types.ToggleResult, error) {
	topic, err := s.TopicDAO.FindById(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, ErrNotFound
	}
	return toggle(ctx, s.FollowTopicDAO, userID, topicID)
}

func (s *ToggleService) ToggleFollowUser(ctx context.Context, userID, targetID uint64) (*types.ToggleResult, error) {
	if userID == targetID {
		return nil, ErrSelfFollow
	}
	target, err := s.UserDAO.FindById(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrNotFound
	}
	return toggle(ctx, s.RelationshipDAO, userID, targetID)
}
