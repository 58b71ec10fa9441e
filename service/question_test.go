package service

import (
	"context"
	"testing"

	"zhihuer/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAggregate 只按预设返回最佳回答，其余方法用不到
type fakeAggregate struct {
	best    *RankedAnswer
	bestErr error
}

func (f *fakeAggregate) CountInteractions(_ context.Context, _ InteractionKind, _ uint64) (int64, error) {
	return 0, nil
}

func (f *fakeAggregate) RankMostActiveUsersInTopic(_ context.Context, _ uint64, _ int) ([]types.ActiveUser, error) {
	return nil, nil
}

func (f *fakeAggregate) RankHottestTopics(_ context.Context, _ int) ([]types.TopicBrief, error) {
	return nil, nil
}

func (f *fakeAggregate) RankMostDiscussedQuestions(_ context.Context, _ int) ([]types.QuestionBrief, error) {
	return nil, nil
}

func (f *fakeAggregate) RankTopAnswersForQuestion(_ context.Context, _ uint64) ([]RankedAnswer, error) {
	return nil, nil
}

func (f *fakeAggregate) BestAnswerForQuestion(_ context.Context, _ uint64) (*RankedAnswer, error) {
	return f.best, f.bestErr
}

func TestBestAnswerNoAnswers(t *testing.T) {
	// 问题下没有回答时不算错误，返回空结果
	svc := &QuestionService{Aggregate: &fakeAggregate{best: nil}}

	item, err := svc.BestAnswer(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestBestAnswerMissingQuestion(t *testing.T) {
	svc := &QuestionService{Aggregate: &fakeAggregate{bestErr: ErrNotFound}}

	_, err := svc.BestAnswer(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
