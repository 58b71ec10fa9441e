package service

import (
	"context"
	"sort"

	"zhihuer/config"
	"zhihuer/dao"
	"zhihuer/dao/cache"
	"zhihuer/models"
	"zhihuer/types"
)

var _ IFeedService = (*FeedService)(nil)

// IFeedService 个人动态流。五路来源合并成一条按活动时间倒序的时间线:
// 提问、回答按发布时间算，关注/点赞/收藏按交互记录的创建时间算。
type IFeedService interface {
	ComposeUserFeed(ctx context.Context, userID uint64) ([]types.FeedItem, error)
}

type FeedService struct {
	Conf              *config.Config
	Cache             cache.Cache
	UserDAO           *dao.Users
	QuestionDAO       *dao.Questions
	AnswerDAO         *dao.Answers
	FollowQuestionDAO *dao.FollowQuestions
	FollowAnswerDAO   *dao.FollowAnswers
	CollectAnswerDAO  *dao.CollectAnswers
}

// mergeFeed 按活动时间倒序合并。单键稳定排序，相同时间戳保持拼接顺序，
// 同样的输入一定得到同样的输出
func mergeFeed(items []types.FeedItem) []types.FeedItem {
	merged := make([]types.FeedItem, len(items))
	copy(merged, items)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].ActivityAt.After(merged[j].ActivityAt)
	})
	return merged
}

// ComposeUserFeed 没有任何动态的用户得到空序列，不是错误。
// 动态页允许短暂滞后，整条时间线按用户缓存。
func (s *FeedService) ComposeUserFeed(ctx context.Context, userID uint64) ([]types.FeedItem, error) {
	return cache.GetOrLoad(ctx, s.Cache, cache.KeyUserFeed(userID), s.Conf.Cache.DefaultTTL(),
		func(ctx context.Context) ([]types.FeedItem, error) {
			return s.composeUserFeed(ctx, userID)
		})
}

func (s *FeedService) composeUserFeed(ctx context.Context, userID uint64) ([]types.FeedItem, error) {
	user, err := s.UserDAO.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	items := make([]types.FeedItem, 0, 32)

	// 1. 提出的问题
	questions, err := s.QuestionDAO.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, q := range questions {
		items = append(items, types.FeedItem{
			Kind:       types.FeedAskQuestion,
			ActivityAt: q.PubTime,
			Question:   questionBrief(q),
		})
	}

	// 2. 发布的回答
	answers, err := s.AnswerDAO.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, a := range answers {
		items = append(items, types.FeedItem{
			Kind:       types.FeedWriteAnswer,
			ActivityAt: a.PubTime,
			Answer:     answerSnapshot(a),
		})
	}

	// 3. 关注的问题，活动时间是关注时刻
	followedQuestions, err := s.FollowQuestionDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	questionMap, err := s.questionsByEdges(ctx, followedQuestions)
	if err != nil {
		return nil, err
	}
	for _, edge := range followedQuestions {
		q, ok := questionMap[edge.QuestionID]
		if !ok {
			continue
		}
		items = append(items, types.FeedItem{
			Kind:       types.FeedFollowQuestion,
			ActivityAt: edge.CreatedAt,
			Question:   questionBrief(q),
		})
	}

	// 4. 点赞的回答
	votedEdges, err := s.FollowAnswerDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	votedIDs := make([]uint64, 0, len(votedEdges))
	for _, e := range votedEdges {
		votedIDs = append(votedIDs, e.AnswerID)
	}

	// 5. 收藏的回答
	collectedEdges, err := s.CollectAnswerDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	collectedIDs := make([]uint64, 0, len(collectedEdges))
	for _, e := range collectedEdges {
		collectedIDs = append(collectedIDs, e.AnswerID)
	}

	answerMap, err := s.answersByIDs(ctx, append(votedIDs, collectedIDs...))
	if err != nil {
		return nil, err
	}
	for _, edge := range votedEdges {
		a, ok := answerMap[edge.AnswerID]
		if !ok {
			continue
		}
		items = append(items, types.FeedItem{
			Kind:       types.FeedVoteAnswer,
			ActivityAt: edge.CreatedAt,
			Answer:     answerSnapshot(a),
		})
	}
	for _, edge := range collectedEdges {
		a, ok := answerMap[edge.AnswerID]
		if !ok {
			continue
		}
		items = append(items, types.FeedItem{
			Kind:       types.FeedCollectAnswer,
			ActivityAt: edge.CreatedAt,
			Answer:     answerSnapshot(a),
		})
	}

	return mergeFeed(items), nil
}

func (s *FeedService) questionsByEdges(ctx context.Context, edges []*models.UserFollowQuestion) (map[uint64]*models.Question, error) {
	ids := make([]uint64, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.QuestionID)
	}
	questions, err := s.QuestionDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	m := make(map[uint64]*models.Question, len(questions))
	for _, q := range questions {
		m[q.ID] = q
	}
	return m, nil
}

func (s *FeedService) answersByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Answer, error) {
	answers, err := s.AnswerDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	m := make(map[uint64]*models.Answer, len(answers))
	for _, a := range answers {
		m[a.ID] = a
	}
	return m, nil
}

func questionBrief(q *models.Question) *types.QuestionBrief {
	return &types.QuestionBrief{
		ID:       q.ID,
		Title:    q.Title,
		ReadNums: q.ReadNums,
	}
}

// answerSnapshot 动态流里的回答快照，计数留给详情页现算
func answerSnapshot(a *models.Answer) *types.AnswerItem {
	return &types.AnswerItem{
		ID:          a.ID,
		QuestionID:  a.QuestionID,
		IsAnonymous: a.IsAnonymous,
		Content:     a.Content,
		PubTime:     a.PubTime,
	}
}
