package cmd

import (
	"log/slog"

	httpadapter "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/redis/placeviewcache"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/ports"
	"freight/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	views      ports.PlaceViewCache
	logger     *slog.Logger
}

// NewCompositionRoot wires the application. redisClient may be nil, which
// disables the place view cache.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient redis.UniversalClient,
	logger *slog.Logger,
) (CompositionRoot, error) {
	isolation, err := config.IsolationLevel()
	if err != nil {
		return CompositionRoot{}, err
	}

	root := CompositionRoot{
		config: config,
		gormDB: gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB,
			postgres.WithIsolation(isolation),
			postgres.WithLockTimeout(config.DBLockTimeout),
		),
		logger: logger,
	}
	if redisClient != nil {
		root.views = placeviewcache.New(redisClient, config.PlaceViewCacheTTL)
	}
	return root, nil
}

func (c *CompositionRoot) CreateCreateTransportRequestCommandHandler() commands.CreateTransportRequestCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})

	retry := commands.DefaultRetryPolicy()
	retry.MaxAttempts = c.config.FulfillmentMaxAttempts
	return commands.NewCreateTransportRequestCommandHandler(f, c.views, retry, c.logger)
}

func (c *CompositionRoot) CreateGetTransportRequestQueryHandler() queries.GetTransportRequestQueryHandler {
	return queries.NewGetTransportRequestQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetPlacesQueryHandler() queries.GetPlacesQueryHandler {
	return queries.NewGetPlacesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFleetStatusQueryHandler() queries.GetFleetStatusQueryHandler {
	return queries.NewGetFleetStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateTransportRequestCommandHandler(),
		c.CreateGetTransportRequestQueryHandler(),
		c.CreateGetPlacesQueryHandler(),
		c.CreateGetFleetStatusQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetFleetStatusQueryHandler(), c.config.FleetAuditSchedule, c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
