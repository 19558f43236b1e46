package app

import (
	"context"
	"fmt"
	"time"

	"jobswipe/internal/config"
	"jobswipe/internal/database"
	dbpostgres "jobswipe/internal/database/postgres"
	"jobswipe/internal/database/seeder"
	"jobswipe/internal/domain/candidate"
	"jobswipe/internal/domain/chat"
	"jobswipe/internal/domain/like"
	"jobswipe/internal/domain/match"
	"jobswipe/internal/domain/matching"
	"jobswipe/internal/domain/vacancy"
	"jobswipe/internal/infrastructure/cache"
	"jobswipe/internal/infrastructure/events"
	"jobswipe/internal/pkg/jwt"
	"jobswipe/internal/pkg/logger"
	"jobswipe/internal/repository"
	"jobswipe/internal/repository/memory"
	"jobswipe/internal/usecase"
	"jobswipe/internal/ws"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Log    *zap.Logger

	// DB is nil when the memory storage driver is selected.
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Events events.Publisher
	JWT    *jwt.HMACService

	Vacancies  vacancy.Repository
	Candidates candidate.Repository

	Swipe   *usecase.Swipe
	Matches *usecase.Matches
	Chat    *usecase.Chat
}

func NewContainer(ctx context.Context, cfg config.Config, log *zap.Logger) (*Container, error) {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Container{Config: cfg, Log: log}

	mapper, err := matching.ParseVacancyMap(cfg.Matching.VacancyMap)
	if err != nil {
		return nil, err
	}

	var (
		likes    like.Repository
		matches  match.Repository
		messages chat.Repository
	)
	switch cfg.App.Storage {
	case config.StorageMemory:
		memMatches := memory.NewMatchRepository()
		likes = memory.NewLikeRepository()
		matches = memMatches
		messages = memory.NewChatRepository(memMatches)
		c.Vacancies = memory.NewVacancyRepository()
		c.Candidates = memory.NewCandidateRepository()

		err := seeder.Runner{Seeders: seeder.Defaults(), Logger: logger.Component(log, "seeder")}.
			Run(ctx, seeder.Catalog{Vacancies: c.Vacancies, Candidates: c.Candidates})
		if err != nil {
			return nil, fmt.Errorf("seed memory catalog: %w", err)
		}
	default:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(connectCtx, cfg.Database, logger.Component(log, "postgres"))
		if err != nil {
			return nil, err
		}
		c.DB = db
		likes = repository.NewPostgresLikeRepository(db)
		matches = repository.NewPostgresMatchRepository(db)
		messages = repository.NewPostgresChatRepository(db)
		c.Vacancies = repository.NewPostgresVacancyRepository(db)
		c.Candidates = repository.NewPostgresCandidateRepository(db)
	}

	c.Cache = cache.NewRedis(cfg.Redis, logger.Component(log, "cache"))
	if c.Cache.Available() {
		matches = repository.NewCachedMatchRepository(matches, c.Cache, c.Cache.TTL(), logger.Component(log, "match_cache"))
	}

	c.Hub = ws.NewHub(logger.Component(log, "ws"))
	c.Events = events.New(cfg.RabbitMQ, logger.Component(log, "events"))
	notifier := usecase.MultiNotifier{c.Hub, c.Events}

	c.JWT = jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.Issuer, cfg.JWT.AccessExpiresIn)

	ucLog := logger.Component(log, "usecase")
	reconciler := usecase.NewReconciler(likes, matches, c.Vacancies, c.Candidates, mapper, ucLog)
	c.Swipe = usecase.NewSwipeUsecase(likes, c.Vacancies, c.Candidates, reconciler, notifier, ucLog)
	c.Matches = usecase.NewMatchUsecase(matches, c.Vacancies, ucLog)
	c.Chat = usecase.NewChatUsecase(messages, c.Matches, notifier, cfg.Matching.MaxMessageLength, ucLog)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var firstErr error
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			firstErr = err
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
