package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"zhihuer/config"
	"zhihuer/dao"
	"zhihuer/dao/cache"
	"zhihuer/types"
)

const (
	// exploreQuestionNums 发现页推荐问题条数
	exploreQuestionNums = 5
	// exploreTopicNums 发现页热门话题条数
	exploreTopicNums = 5
	// exploreAnswerNums 本月/今日榜单条数
	exploreAnswerNums = 10
)

var _ IExploreService = (*ExploreService)(nil)

type IExploreService interface {
	GetExplorePage(ctx context.Context) (*types.ExplorePageResponse, error)
	GetHotTopics(ctx context.Context, limit int) ([]types.TopicBrief, error)
	GetHotQuestions(ctx context.Context, limit int) ([]types.QuestionBrief, error)
}

type ExploreService struct {
	Conf            *config.Config
	Cache           cache.Cache
	QuestionDAO     *dao.Questions
	AnswerDAO       *dao.Answers
	FollowAnswerDAO *dao.FollowAnswers
	Aggregate       IAggregateService
	Assembler       *AnswerAssembler
}

// GetExplorePage 发现页聚合。四个板块互不依赖，并发拉取，
// 整页结果缓存，过期前所有访客看到同一份。
func (s *ExploreService) GetExplorePage(ctx context.Context) (*types.ExplorePageResponse, error) {
	return cache.GetOrLoad(ctx, s.Cache, cache.KeyExplorePage(), s.Conf.Cache.ExploreTTL(), s.buildExplorePage)
}

func (s *ExploreService) buildExplorePage(ctx context.Context) (*types.ExplorePageResponse, error) {
	resp := &types.ExplorePageResponse{}
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		questions, err := s.QuestionDAO.ListTopByReadNums(ctx, exploreQuestionNums)
		if err != nil {
			return err
		}
		briefs := make([]types.QuestionBrief, 0, len(questions))
		for _, q := range questions {
			briefs = append(briefs, types.QuestionBrief{ID: q.ID, Title: q.Title, ReadNums: q.ReadNums})
		}
		resp.RecommendQuestions = briefs
		return nil
	})
	eg.Go(func() error {
		items, err := s.topVotedAnswersSince(ctx, monthStart, now)
		if err != nil {
			return err
		}
		resp.MonthAnswers = items
		return nil
	})
	eg.Go(func() error {
		items, err := s.topVotedAnswersSince(ctx, dayStart, now)
		if err != nil {
			return err
		}
		resp.TodayAnswers = items
		return nil
	})
	eg.Go(func() error {
		topics, err := s.Aggregate.RankHottestTopics(ctx, exploreTopicNums)
		if err != nil {
			return err
		}
		resp.HotTopics = topics
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetHotTopics 热门话题榜，按关注人数排
func (s *ExploreService) GetHotTopics(ctx context.Context, limit int) ([]types.TopicBrief, error) {
	if limit <= 0 || limit > types.DefaultPageSize {
		limit = exploreTopicNums
	}
	return cache.GetOrLoad(ctx, s.Cache, cache.KeyHotTopics(limit), s.Conf.Cache.DefaultTTL(),
		func(ctx context.Context) ([]types.TopicBrief, error) {
			return s.Aggregate.RankHottestTopics(ctx, limit)
		})
}

// GetHotQuestions 热门问题榜，按关注人数排
func (s *ExploreService) GetHotQuestions(ctx context.Context, limit int) ([]types.QuestionBrief, error) {
	if limit <= 0 || limit > types.DefaultPageSize {
		limit = exploreQuestionNums
	}
	return cache.GetOrLoad(ctx, s.Cache, cache.KeyHotQuestions(limit), s.Conf.Cache.DefaultTTL(),
		func(ctx context.Context) ([]types.QuestionBrief, error) {
			return s.Aggregate.RankMostDiscussedQuestions(ctx, limit)
		})
}

// topVotedAnswersSince 时间窗内按获赞数取回答榜单
func (s *ExploreService) topVotedAnswersSince(ctx context.Context, from, to time.Time) ([]types.AnswerItem, error) {
	answers, err := s.AnswerDAO.ListByPubTimeRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return []types.AnswerItem{}, nil
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
	if len(ranked) > exploreAnswerNums {
		ranked = ranked[:exploreAnswerNums]
	}
	return s.Assembler.ItemsWithVotes(ctx, ranked, votes)
}
