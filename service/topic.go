package service

import (
	"context"

	"zhihuer/config"
	"zhihuer/dao"
	"zhihuer/dao/cache"
	"zhihuer/models"
	"zhihuer/types"
)

// topicActiveUserNums 话题页展示的活跃用户数
const topicActiveUserNums = 3

var _ ITopicService = (*TopicService)(nil)

type ITopicService interface {
	ListTopics(ctx context.Context) ([]types.TopicBrief, error)
	GetTopicDetail(ctx context.Context, topicID uint64, filter types.TopicFilter, pageNum int) (*types.TopicDetailResponse, error)
}

type TopicService struct {
	Conf            *config.Config
	Cache           cache.Cache
	TopicDAO        *dao.Topics
	AnswerDAO       *dao.Answers
	FollowTopicDAO  *dao.FollowTopics
	FollowAnswerDAO *dao.FollowAnswers
	Aggregate       IAggregateService
	Assembler       *AnswerAssembler
}

// ListTopics 全部话题，带实时关注人数
func (s *TopicService) ListTopics(ctx context.Context) ([]types.TopicBrief, error) {
	topics, err := s.TopicDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.TopicDAO.CountFollowersByTopic(ctx)
	if err != nil {
		return nil, err
	}
	followers := make(map[uint64]int64, len(rows))
	for _, r := range rows {
		followers[r.TopicID] = r.Followers
	}
	briefs := make([]types.TopicBrief, 0, len(topics))
	for _, t := range topics {
		briefs = append(briefs, types.TopicBrief{
			ID:           t.ID,
			Name:         t.Name,
			Description:  t.Description,
			Image:        t.Image,
			FollowerNums: followers[t.ID],
		})
	}
	return briefs, nil
}

// GetTopicDetail 话题详情页。all 按发布时间，wonderful 按获赞数。
// 活跃用户榜走缓存，短时间内读到旧榜可以接受。
func (s *TopicService) GetTopicDetail(ctx context.Context, topicID uint64, filter types.TopicFilter, pageNum int) (*types.TopicDetailResponse, error) {
	if filter != types.FilterAll && filter != types.FilterWonderful {
		return nil, ErrUnknownFilter
	}
	topic, err := s.TopicDAO.FindById(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, ErrNotFound
	}

	answers, votes, err := s.loadAnswers(ctx, topicID, filter)
	if err != nil {
		return nil, err
	}

	if pageNum < 1 {
		pageNum = 1
	}
	pageSize := types.DefaultPageSize
	total := int64(len(answers))
	offset := (pageNum - 1) * pageSize
	pageAnswers := paginate(answers, offset, pageSize)

	var items []types.AnswerItem
	if votes != nil {
		items, err = s.Assembler.ItemsWithVotes(ctx, pageAnswers, votes)
	} else {
		items, err = s.Assembler.Items(ctx, pageAnswers)
	}
	if err != nil {
		return nil, err
	}

	activeUsers, err := cache.GetOrLoad(ctx, s.Cache, cache.KeyTopicActiveUsers(topicID, topicActiveUserNums),
		s.Conf.Cache.DefaultTTL(),
		func(ctx context.Context) ([]types.ActiveUser, error) {
			return s.Aggregate.RankMostActiveUsersInTopic(ctx, topicID, topicActiveUserNums)
		})
	if err != nil {
		return nil, err
	}

	followerNums, err := s.FollowTopicDAO.Count(ctx, "topic_id = ?", topicID)
	if err != nil {
		return nil, err
	}

	return &types.TopicDetailResponse{
		Topic: types.TopicBrief{
			ID:           topic.ID,
			Name:         topic.Name,
			Description:  topic.Description,
			Image:        topic.Image,
			FollowerNums: followerNums,
		},
		Answers:     items,
		ActiveUsers: activeUsers,
		Page: types.Page{
			PageNum:  pageNum,
			PageSize: pageSize,
			Total:    total,
			HasMore:  int64(offset+len(pageAnswers)) < total,
		},
	}, nil
}

func (s *TopicService) loadAnswers(ctx context.Context, topicID uint64, filter types.TopicFilter) ([]*models.Answer, map[uint64]int64, error) {
	answers, err := s.AnswerDAO.ListByTopic(ctx, topicID)
	if err != nil {
		return nil, nil, err
	}
	if filter == types.FilterAll {
		return answers, nil, nil
	}

	answerIDs := make([]uint64, 0, len(answers))
	for _, a := range answers {
		answerIDs = append(answerIDs, a.ID)
	}
	votes, err := s.FollowAnswerDAO.CountByAnswers(ctx, answerIDs)
	if err != nil {
		return nil, nil, err
	}
	return rankAnswersByVotes(answers, votes), votes, nil
}
