package server

import (
	"zhihuer/handler"
)

type Handlers struct {
	User     *handler.User
	Question *handler.Question
	Answer   *handler.Answer
	Topic    *handler.TopicHandler
	Explore  *handler.Explore
	Relation *handler.Relation
	Search   *handler.SearchHandler
	Comment  *handler.CommentHandler
}
