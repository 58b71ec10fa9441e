package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewQuestions,
	NewQuestionTopics,
	NewAnswers,
	NewTopics,
	NewComments,
	NewFollowAnswers,
	NewCollectAnswers,
	NewFollowQuestions,
	NewFollowTopics,
	NewRelationships,
)
