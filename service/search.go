package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/go-ego/gse"

	"zhihuer/dao"
	"zhihuer/types"
)

var _ ISearchService = (*SearchService)(nil)

type ISearchService interface {
	Search(ctx context.Context, kind types.SearchKind, keywords string) (*types.SearchResponse, error)
}

type SearchService struct {
	seg gse.Segmenter

	UserDAO     *dao.Users
	QuestionDAO *dao.Questions
	AnswerDAO   *dao.Answers
	TopicDAO    *dao.Topics
	Assembler   *AnswerAssembler
}

func NewSearchService(userDAO *dao.Users, questionDAO *dao.Questions, answerDAO *dao.Answers, topicDAO *dao.Topics, assembler *AnswerAssembler) (*SearchService, error) {
	s := &SearchService{
		UserDAO:     userDAO,
		QuestionDAO: questionDAO,
		AnswerDAO:   answerDAO,
		TopicDAO:    topicDAO,
		Assembler:   assembler,
	}
	// 内置词典，中文按词切、英文按空格切
	if err := s.seg.LoadDict(); err != nil {
		return nil, err
	}
	return s, nil
}

// Search 站内搜索。关键词先分词，任意一个词命中就算匹配，
// 结果按ID升序，封顶一百条。
func (s *SearchService) Search(ctx context.Context, kind types.SearchKind, keywords string) (*types.SearchResponse, error) {
	switch kind {
	case types.SearchQuestion, types.SearchAnswer, types.SearchTopic, types.SearchUser:
	default:
		return nil, ErrUnknownKind
	}
	keywords = strings.TrimSpace(keywords)
	if utf8.RuneCountInString(keywords) > types.MaxKeywordRunes {
		return nil, ErrKeywordTooLong
	}

	terms := s.tokenize(keywords)
	if len(terms) == 0 {
		return &types.SearchResponse{}, nil
	}

	switch kind {
	case types.SearchQuestion:
		return s.searchQuestions(ctx, terms)
	case types.SearchAnswer:
		return s.searchAnswers(ctx, terms)
	case types.SearchTopic:
		return s.searchTopics(ctx, terms)
	default:
		return s.searchUsers(ctx, terms)
	}
}

// tokenize 切词并去重，空白和单字符标点丢掉
func (s *SearchService) tokenize(keywords string) []string {
	cut := s.seg.CutSearch(keywords, true)
	seen := make(map[string]struct{}, len(cut))
	terms := make([]string, 0, len(cut))
	for _, w := range cut {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		terms = append(terms, w)
	}
	return terms
}

func (s *SearchService) searchQuestions(ctx context.Context, terms []string) (*types.SearchResponse, error) {
	questions, err := s.QuestionDAO.SearchByTitle(ctx, terms, types.MaxSearchResults)
	if err != nil {
		return nil, err
	}
	briefs := make([]types.QuestionBrief, 0, len(questions))
	for _, q := range questions {
		briefs = append(briefs, types.QuestionBrief{ID: q.ID, Title: q.Title, ReadNums: q.ReadNums})
	}
	return &types.SearchResponse{Questions: briefs}, nil
}

func (s *SearchService) searchAnswers(ctx context.Context, terms []string) (*types.SearchResponse, error) {
	answers, err := s.AnswerDAO.SearchByContent(ctx, terms, types.MaxSearchResults)
	if err != nil {
		return nil, err
	}
	items, err := s.Assembler.Items(ctx, answers)
	if err != nil {
		return nil, err
	}
	return &types.SearchResponse{Answers: items}, nil
}

func (s *SearchService) searchTopics(ctx context.Context, terms []string) (*types.SearchResponse, error) {
	topics, err := s.TopicDAO.SearchByName(ctx, terms, types.MaxSearchResults)
	if err != nil {
		return nil, err
	}
	briefs := make([]types.TopicBrief, 0, len(topics))
	for _, t := range topics {
		briefs = append(briefs, types.TopicBrief{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Image:       t.Image,
		})
	}
	return &types.SearchResponse{Topics: briefs}, nil
}

func (s *SearchService) searchUsers(ctx context.Context, terms []string) (*types.SearchResponse, error) {
	users, err := s.UserDAO.SearchByNickname(ctx, terms, types.MaxSearchResults)
	if err != nil {
		return nil, err
	}
	briefs := make([]types.UserBrief, 0, len(users))
	for _, u := range users {
		briefs = append(briefs, types.UserBrief{ID: u.ID, Nickname: u.Nickname, Avatar: u.Avatar})
	}
	return &types.SearchResponse{Users: briefs}, nil
}
