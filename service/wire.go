package service

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	wire.Struct(new(AnswerAssembler), "*"),

	wire.Struct(new(AggregateService), "*"),
	wire.Bind(new(IAggregateService), new(*AggregateService)),

	wire.Struct(new(FeedService), "*"),
	wire.Bind(new(IFeedService), new(*FeedService)),

	wire.Struct(new(ToggleService), "*"),
	wire.Bind(new(IToggleService), new(*ToggleService)),

	wire.Struct(new(AnswerService), "*"),
	wire.Bind(new(IAnswerService), new(*AnswerService)),

	wire.Struct(new(QuestionService), "*"),
	wire.Bind(new(IQuestionService), new(*QuestionService)),

	wire.Struct(new(TopicService), "*"),
	wire.Bind(new(ITopicService), new(*TopicService)),

	wire.Struct(new(ExploreService), "*"),
	wire.Bind(new(IExploreService), new(*ExploreService)),

	NewSearchService,
	wire.Bind(new(ISearchService), new(*SearchService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),
)
