//go:build wireinject
// +build wireinject

package main

import (
	"zhihuer/config"
	"zhihuer/dao"
	"zhihuer/dao/cache"
	"zhihuer/handler"
	"zhihuer/middleware"
	"zhihuer/pkg/client"
	"zhihuer/pkg/database"
	"zhihuer/pkg/mail"
	"zhihuer/pkg/server"
	"zhihuer/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		mail.NewSender,
		server.NewGinEngine,

		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(middleware.PageCache), "*"),

		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Question), "*"),
		wire.Struct(new(handler.Answer), "*"),
		wire.Struct(new(handler.TopicHandler), "*"),
		wire.Struct(new(handler.Explore), "*"),
		wire.Struct(new(handler.Relation), "*"),
		wire.Struct(new(handler.SearchHandler), "*"),
		wire.Struct(new(handler.CommentHandler), "*"),

		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil, nil
}
