package service

import (
	"context"
	"strings"
	"testing"

	"zhihuer/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRejectsUnknownKind(t *testing.T) {
	s := &SearchService{}
	_, err := s.Search(context.Background(), "article", "golang")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestSearchRejectsLongKeyword(t *testing.T) {
	s := &SearchService{}
	long := strings.Repeat("长", types.MaxKeywordRunes+1)
	_, err := s.Search(context.Background(), types.SearchQuestion, long)
	assert.ErrorIs(t, err, ErrKeywordTooLong)
}

func TestSearchEmptyKeywords(t *testing.T) {
	s, err := NewSearchService(nil, nil, nil, nil, nil)
	require.NoError(t, err)

	resp, err := s.Search(context.Background(), types.SearchQuestion, "   ")
	require.NoError(t, err)
	assert.Empty(t, resp.Questions)
}

func TestTokenize(t *testing.T) {
	s, err := NewSearchService(nil, nil, nil, nil, nil)
	require.NoError(t, err)

	terms := s.tokenize("数据库 事务隔离")
	assert.NotEmpty(t, terms)
	for _, term := range terms {
		assert.NotEqual(t, "", strings.TrimSpace(term))
	}
}

func TestTokenizeDedup(t *testing.T) {
	s, err := NewSearchService(nil, nil, nil, nil, nil)
	require.NoError(t, err)

	terms := s.tokenize("golang golang golang")
	seen := make(map[string]int)
	for _, term := range terms {
		seen[term]++
	}
	for term, n := range seen {
		assert.Equal(t, 1, n, "term %q appears %d times", term, n)
	}
}
