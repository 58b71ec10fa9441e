package service

import (
	"context"

	"zhihuer/dao"
	"zhihuer/models"
	"zhihuer/types"
)

// InteractionKind 计数口径
type InteractionKind string

const (
	KindQuestionFollowers InteractionKind = "question_followers"
	KindAnswerVotes       InteractionKind = "answer_votes"
	KindAnswerCollects    InteractionKind = "answer_collects"
	KindTopicFollowers    InteractionKind = "topic_followers"
	KindUserFollowers     InteractionKind = "user_followers"
	KindUserFollowing     InteractionKind = "user_following"
)

// RankedAnswer 回答与其实时获赞数
type RankedAnswer struct {
	Answer   *models.Answer
	VoteNums int64
}

var _ IAggregateService = (*AggregateService)(nil)

// IAggregateService 跨交互表的计数与排行。
// 全部只读，对空输入返回空结果；传不存在的主体ID是调用方违约，报 ErrNotFound。
// 这里不做缓存，缓存在上层按键套（见 ExploreService / TopicService）。
type IAggregateService interface {
	CountInteractions(ctx context.Context, kind InteractionKind, objectID uint64) (int64, error)
	RankMostActiveUsersInTopic(ctx context.Context, topicID uint64, limit int) ([]types.ActiveUser, error)
	RankHottestTopics(ctx context.Context, limit int) ([]types.TopicBrief, error)
	RankMostDiscussedQuestions(ctx context.Context, limit int) ([]types.QuestionBrief, error)
	RankTopAnswersForQuestion(ctx context.Context, questionID uint64) ([]RankedAnswer, error)
	BestAnswerForQuestion(ctx context.Context, questionID uint64) (*RankedAnswer, error)
}

type AggregateService struct {
	UserDAO           *dao.Users
	QuestionDAO       *dao.Questions
	AnswerDAO         *dao.Answers
	TopicDAO          *dao.Topics
	FollowAnswerDAO   *dao.FollowAnswers
	CollectAnswerDAO  *dao.CollectAnswers
	FollowQuestionDAO *dao.FollowQuestions
	FollowTopicDAO    *dao.FollowTopics
	RelationshipDAO   *dao.Relationships
}

// CountInteractions 数交互记录条数，没有记录就是 0
func (s *AggregateService) CountInteractions(ctx context.Context, kind InteractionKind, objectID uint64) (int64, error) {
	switch kind {
	case KindQuestionFollowers:
		return s.FollowQuestionDAO.Count(ctx, "question_id = ?", objectID)
	case KindAnswerVotes:
		return s.FollowAnswerDAO.Count(ctx, "answer_id = ?", objectID)
	case KindAnswerCollects:
		return s.CollectAnswerDAO.Count(ctx, "answer_id = ?", objectID)
	case KindTopicFollowers:
		return s.FollowTopicDAO.Count(ctx, "topic_id = ?", objectID)
	case KindUserFollowers:
		return s.RelationshipDAO.Count(ctx, "followed_id = ?", objectID)
	case KindUserFollowing:
		return s.RelationshipDAO.Count(ctx, "follower_id = ?", objectID)
	default:
		return 0, ErrUnknownInteraction
	}
}

// RankMostActiveUsersInTopic 话题下最活跃用户。
// 话题没有回答返回空列表，话题本身不存在返回 ErrNotFound。
func (s *AggregateService) RankMostActiveUsersInTopic(ctx context.Context, topicID uint64, limit int) ([]types.ActiveUser, error) {
	topic, err := s.TopicDAO.FindById(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, ErrNotFound
	}

	answers, err := s.AnswerDAO.ListByTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return []types.ActiveUser{}, nil
	}

	answerIDs := make([]uint64, 0, len(answers))
	for _, a := range answers {
		answerIDs = append(answerIDs, a.ID)
	}
	votes, err := s.FollowAnswerDAO.CountByAnswers(ctx, answerIDs)
	if err != nil {
		return nil, err
	}

	stats := rankActiveUsers(answers, votes, limit)

	userIDs := make([]uint64, 0, len(stats))
	for _, st := range stats {
		userIDs = append(userIDs, st.UserID)
	}
	users, err := s.UserDAO.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	userMap := make(map[uint64]*models.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}

	result := make([]types.ActiveUser, 0, len(stats))
	for _, st := range stats {
		item := types.ActiveUser{
			UserID:     st.UserID,
			AnswerNums: st.AnswerNums,
			VoteNums:   st.VoteNums,
		}
		if u, ok := userMap[st.UserID]; ok {
			item.Nickname = u.Nickname
			item.Avatar = u.Avatar
		}
		result = append(result, item)
	}
	return result, nil
}

// RankHottestTopics 按关注人数排话题
func (s *AggregateService) RankHottestTopics(ctx context.Context, limit int) ([]types.TopicBrief, error) {
	rows, err := s.TopicDAO.CountFollowersByTopic(ctx)
	if err != nil {
		return nil, err
	}

	pairs := make([]idCount, 0, len(rows))
	for _, r := range rows {
		pairs = append(pairs, idCount{ID: r.TopicID, Count: r.Followers})
	}
	top := topIDsByCount(pairs, limit)

	ids := make([]uint64, 0, len(top))
	for _, p := range top {
		ids = append(ids, p.ID)
	}
	topics, err := s.TopicDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	topicMap := make(map[uint64]*models.Topic, len(topics))
	for _, t := range topics {
		topicMap[t.ID] = t
	}
	return topicBriefs(top, topicMap), nil
}

// RankMostDiscussedQuestions 按关注人数排问题
func (s *AggregateService) RankMostDiscussedQuestions(ctx context.Context, limit int) ([]types.QuestionBrief, error) {
	rows, err := s.FollowQuestionDAO.CountByQuestion(ctx)
	if err != nil {
		return nil, err
	}

	pairs := make([]idCount, 0, len(rows))
	for _, r := range rows {
		pairs = append(pairs, idCount{ID: r.QuestionID, Count: r.Followers})
	}
	top := topIDsByCount(pairs, limit)

	ids := make([]uint64, 0, len(top))
	for _, p := range top {
		ids = append(ids, p.ID)
	}
	questions, err := s.QuestionDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	questionMap := make(map[uint64]*models.Question, len(questions))
	for _, q := range questions {
		questionMap[q.ID] = q
	}
	return questionBriefs(top, questionMap), nil
}

// RankTopAnswersForQuestion 问题下按获赞数排回答，平手保持发布序
func (s *AggregateService) RankTopAnswersForQuestion(ctx context.Context, questionID uint64) ([]RankedAnswer, error) {
	question, err := s.QuestionDAO.FindById(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrNotFound
	}

	answers, err := s.AnswerDAO.ListByQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return []RankedAnswer{}, nil
	}

	answerIDs := make([]uint64, 0, len(answers))
	for _, a := range answers {
		answerIDs = append(answerIDs, a.ID)
	}
	votes, err := s.FollowAnswerDAO.CountByAnswers(ctx, answerIDs)
	if err != nil {
		return nil, err
	}

	ranked := rankAnswersByVotes(answers, votes)
	result := make([]RankedAnswer, 0, len(ranked))
	for _, a := range ranked {
		result = append(result, RankedAnswer{Answer: a, VoteNums: votes[a.ID]})
	}
	return result, nil
}

// BestAnswerForQuestion 获赞最多的回答，没有回答返回 nil
func (s *AggregateService) BestAnswerForQuestion(ctx context.Context, questionID uint64) (*RankedAnswer, error) {
	ranked, err := s.RankTopAnswersForQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, nil
	}
	return &ranked[0], nil
}
