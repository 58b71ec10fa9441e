package service

import (
	"context"
	"time"

	"zhihuer/config"
	"zhihuer/dao"
	"zhihuer/dao/cache"
	"zhihuer/models"
	"zhihuer/pkg/snowflake"
	"zhihuer/types"
)

// relatedQuestionNums 问题详情页的相关问题条数
const relatedQuestionNums = 5

var _ IQuestionService = (*QuestionService)(nil)

type IQuestionService interface {
	GetQuestionDetail(ctx context.Context, questionID uint64, sort types.AnswerSort, pageNum int) (*types.QuestionDetailResponse, error)
	CreateQuestion(ctx context.Context, userID uint64, title, content string, anonymous bool, topicIDs []uint64) (*models.Question, error)
	DeleteQuestion(ctx context.Context, userID, questionID uint64) error
	BestAnswer(ctx context.Context, questionID uint64) (*types.AnswerItem, error)
}

type QuestionService struct {
	Conf             *config.Config
	Cache            cache.Cache
	UserDAO          *dao.Users
	QuestionDAO      *dao.Questions
	QuestionTopicDAO *dao.QuestionTopics
	AnswerDAO        *dao.Answers
	FollowQuestDAO   *dao.FollowQuestions
	Aggregate        IAggregateService
	Assembler        *AnswerAssembler
}

// GetQuestionDetail 问题详情页。浏览量先加一再读，
// 并发下少计几次无所谓。
func (s *QuestionService) GetQuestionDetail(ctx context.Context, questionID uint64, sort types.AnswerSort, pageNum int) (*types.QuestionDetailResponse, error) {
	if sort != types.SortByVotes && sort != types.SortByTime {
		return nil, ErrUnknownSort
	}
	question, err := s.QuestionDAO.FindById(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrNotFound
	}
	if err := s.QuestionDAO.IncrReadNums(ctx, questionID); err != nil {
		return nil, err
	}
	question.ReadNums++

	answers, votes, err := s.loadAnswers(ctx, questionID, sort)
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

	item, err := s.questionItem(ctx, question, total)
	if err != nil {
		return nil, err
	}

	related, err := s.relatedQuestions(ctx, question)
	if err != nil {
		return nil, err
	}

	return &types.QuestionDetailResponse{
		Question:         *item,
		Answers:          items,
		RelatedQuestions: related,
		Page: types.Page{
			PageNum:  pageNum,
			PageSize: pageSize,
			Total:    total,
			HasMore:  int64(offset+len(pageAnswers)) < total,
		},
	}, nil
}

// loadAnswers 按排序方式取回答全量。按赞排序走缓存，
// 按时间排序直接查库，不值得缓存。
func (s *QuestionService) loadAnswers(ctx context.Context, questionID uint64, sort types.AnswerSort) ([]*models.Answer, map[uint64]int64, error) {
	if sort == types.SortByTime {
		answers, err := s.AnswerDAO.ListByQuestion(ctx, questionID)
		if err != nil {
			return nil, nil, err
		}
		return answers, nil, nil
	}

	ranked, err := cache.GetOrLoad(ctx, s.Cache, cache.KeyTopAnswers(questionID), s.Conf.Cache.DefaultTTL(),
		func(ctx context.Context) ([]RankedAnswer, error) {
			return s.Aggregate.RankTopAnswersForQuestion(ctx, questionID)
		})
	if err != nil {
		return nil, nil, err
	}

	answers := make([]*models.Answer, 0, len(ranked))
	votes := make(map[uint64]int64, len(ranked))
	for _, r := range ranked {
		answers = append(answers, r.Answer)
		votes[r.Answer.ID] = r.VoteNums
	}
	return answers, votes, nil
}

func (s *QuestionService) questionItem(ctx context.Context, question *models.Question, answerNums int64) (*types.QuestionItem, error) {
	followNums, err := s.FollowQuestDAO.Count(ctx, "question_id = ?", question.ID)
	if err != nil {
		return nil, err
	}
	item := &types.QuestionItem{
		ID:          question.ID,
		Title:       question.Title,
		Content:     question.Content,
		IsAnonymous: question.IsAnonymous,
		PubTime:     question.PubTime,
		ReadNums:    question.ReadNums,
		AnswerNums:  answerNums,
		FollowNums:  followNums,
	}
	if !question.IsAnonymous {
		author, err := s.UserDAO.FindById(ctx, question.AuthorID)
		if err != nil {
			return nil, err
		}
		if author != nil {
			item.Author = types.UserBrief{ID: author.ID, Nickname: author.Nickname, Avatar: author.Avatar}
		}
	}
	return item, nil
}

// relatedQuestions 同一话题下按浏览量取几条相关问题。
// 问题没挂话题就给空列表。
func (s *QuestionService) relatedQuestions(ctx context.Context, question *models.Question) ([]types.QuestionBrief, error) {
	topicID, err := s.QuestionTopicDAO.FirstTopicID(ctx, question.ID)
	if err != nil {
		return nil, err
	}
	if topicID == 0 {
		return []types.QuestionBrief{}, nil
	}
	// 多取一条，把自己排掉后还够数
	candidates, err := s.QuestionDAO.ListByTopic(ctx, topicID, relatedQuestionNums+1)
	if err != nil {
		return nil, err
	}
	briefs := make([]types.QuestionBrief, 0, relatedQuestionNums)
	for _, q := range candidates {
		if q.ID == question.ID {
			continue
		}
		briefs = append(briefs, types.QuestionBrief{ID: q.ID, Title: q.Title, ReadNums: q.ReadNums})
		if len(briefs) == relatedQuestionNums {
			break
		}
	}
	return briefs, nil
}

func (s *QuestionService) CreateQuestion(ctx context.Context, userID uint64, title, content string, anonymous bool, topicIDs []uint64) (*models.Question, error) {
	question := &models.Question{
		ID:          uint64(snowflake.GenID()),
		Title:       title,
		AuthorID:    userID,
		Content:     content,
		PubTime:     time.Now(),
		IsAnonymous: anonymous,
	}
	if err := s.QuestionDAO.Create(ctx, question); err != nil {
		return nil, err
	}
	if len(topicIDs) > 0 {
		if err := s.QuestionTopicDAO.BatchCreate(ctx, question.ID, topicIDs); err != nil {
			return nil, err
		}
	}
	return question, nil
}

// BestAnswer 问题下获赞最多的回答，没有任何回答时返回 nil
func (s *QuestionService) BestAnswer(ctx context.Context, questionID uint64) (*types.AnswerItem, error) {
	best, err := s.Aggregate.BestAnswerForQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if best == nil {
		return nil, nil
	}
	items, err := s.Assembler.ItemsWithVotes(ctx, []*models.Answer{best.Answer},
		map[uint64]int64{best.Answer.ID: best.VoteNums})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

// DeleteQuestion 作者删问题。问题下的回答不删，
// 改挂到占位问题上，回答继续可见。
func (s *QuestionService) DeleteQuestion(ctx context.Context, userID, questionID uint64) error {
	question, err := s.QuestionDAO.FindById(ctx, questionID)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrNotFound
	}
	if question.AuthorID != userID {
		return ErrNotOwner
	}
	sentinelUser, err := s.UserDAO.GetOrCreateSentinel(ctx)
	if err != nil {
		return err
	}
	sentinelQuestion, err := s.QuestionDAO.GetOrCreateSentinel(ctx, sentinelUser.ID)
	if err != nil {
		return err
	}
	if err := s.QuestionDAO.DeleteWithSentinel(ctx, questionID, sentinelQuestion.ID); err != nil {
		return err
	}
	_ = s.Cache.Invalidate(ctx, cache.KeyTopAnswers(questionID))
	return nil
}

// paginate 内存分页，offset 超界时给空页
func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
