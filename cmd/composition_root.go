package cmd

import (
	"io"
	"log/slog"

	"checkout/internal/adapters/in/cli"
	httpin "checkout/internal/adapters/in/http"
	"checkout/internal/adapters/out/memory/sessionrepo"
	"checkout/internal/adapters/out/postgres"
	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/services"
	"checkout/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config   Config
	logger   *slog.Logger
	sessions *sessionrepo.Repository

	// nil when attempt recording is disabled
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot wires the application. gormDB may be nil, in which case
// submission attempts are not recorded and the stats endpoint answers 503.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		config:   config,
		logger:   logger,
		sessions: sessionrepo.NewRepository(),
		gormDB:   gormDB,
	}
	if gormDB != nil {
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	}

	return root
}

// OpenDatabase connects and migrates when recording is enabled. It returns
// a nil *gorm.DB otherwise.
func OpenDatabase(config Config) (*gorm.DB, error) {
	if !config.RecordingEnabled() {
		return nil, nil //nolint:nilnil // no database is a valid configuration
	}

	db, err := postgres.Open(postgres.DSN(
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode,
	))
	if err != nil {
		return nil, err
	}
	if err = postgres.Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func (c *CompositionRoot) CreateCreateSessionCommandHandler() commands.CreateSessionCommandHandler {
	return commands.NewCreateSessionCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateSetFieldCommandHandler() commands.SetFieldCommandHandler {
	return commands.NewSetFieldCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateSubmitCheckoutCommandHandler() commands.SubmitCheckoutCommandHandler {
	var f commands.AttemptUoWFactory
	if c.uowFactory != nil {
		f = FuncAttemptUoWFactory(func() commands.AttemptUoW {
			return c.uowFactory.Create()
		})
	}
	return commands.NewSubmitCheckoutCommandHandler(c.sessions, services.NewCheckoutValidator(), f, c.logger)
}

func (c *CompositionRoot) CreateExpireIdleSessionsCommandHandler() commands.ExpireIdleSessionsCommandHandler {
	return commands.NewExpireIdleSessionsCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateGetSessionQueryHandler() queries.GetSessionQueryHandler {
	return queries.NewGetSessionQueryHandler(c.sessions)
}

// CreateGetSubmissionStatsQueryHandler returns nil when recording is disabled.
func (c *CompositionRoot) CreateGetSubmissionStatsQueryHandler() *queries.GetSubmissionStatsQueryHandler {
	if c.gormDB == nil {
		return nil
	}
	h := queries.NewGetSubmissionStatsQueryHandler(c.gormDB)
	return &h
}

func (c *CompositionRoot) NewRouter() (*echo.Echo, error) {
	server := httpin.NewServer(
		c.CreateCreateSessionCommandHandler(),
		c.CreateSetFieldCommandHandler(),
		c.CreateSubmitCheckoutCommandHandler(),
		c.CreateGetSessionQueryHandler(),
		c.CreateGetSubmissionStatsQueryHandler(),
		c.logger,
	)
	return httpin.NewRouter(server, httpin.RouterConfig{SubmitRateLimit: c.config.SubmitRateLimit}, c.logger)
}

func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpireIdleSessionsCommandHandler(),
		c.config.SessionSweepSchedule,
		c.config.SessionTTL,
		c.logger,
	)
}

func (c *CompositionRoot) NewTerminal(out io.Writer) *cli.Terminal {
	return cli.NewTerminal(
		c.CreateCreateSessionCommandHandler(),
		c.CreateSetFieldCommandHandler(),
		c.CreateSubmitCheckoutCommandHandler(),
		c.CreateGetSessionQueryHandler(),
		cli.NewSurveyDriver(out),
	)
}

type FuncAttemptUoWFactory func() commands.AttemptUoW

func (f FuncAttemptUoWFactory) Create() commands.AttemptUoW {
	return f()
}
