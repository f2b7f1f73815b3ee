package cli

import (
	"database/sql"
	"fmt"

	"github.com/alexanderramin/taskora/internal/config"
	"github.com/alexanderramin/taskora/internal/db"
	"github.com/alexanderramin/taskora/internal/repository"
	"github.com/alexanderramin/taskora/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// App holds the configuration and service interfaces used by CLI commands.
// Services left nil are wired from Config.DBPath before a command runs.
type App struct {
	Config config.Config
	Logger *zap.Logger

	Tasks        service.TaskService
	Tribes       service.TribeService
	Analytics    service.AnalyticsService
	Pricing      service.PricingService
	Achievements service.AchievementService
	Dashboard    service.DashboardService

	// IsInteractive reports whether stdin is a terminal. Prompts are only
	// shown when it returns true.
	IsInteractive func() bool

	database *sql.DB
}

// NewRootCmd creates the top-level "taskora" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "taskora",
		Short:         "Eisenhower-matrix tasks, tribes and plans",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("db") {
				app.Config.DBPath, _ = flags.GetString("db")
			}
			if flags.Changed("user") {
				app.Config.UserID, _ = flags.GetString("user")
			}
			if verbose {
				app.Config.LogLevel = "debug"
				app.Config.LogUseCases = true
			}
			if app.Logger == nil {
				logger, err := newLogger(app.Config.LogLevel)
				if err != nil {
					return err
				}
				app.Logger = logger
			}
			return app.connect()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
	}

	pf := root.PersistentFlags()
	pf.String("db", "", "SQLite database path (default from TASKORA_DB)")
	pf.String("user", "", "Act as this user ID (default from TASKORA_USER)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log service use cases to stderr")

	root.AddCommand(
		newTaskCmd(app),
		newBoardCmd(app),
		newTribeCmd(app),
		newAnalyticsCmd(app),
		newPricingCmd(app),
		newPlanCmd(app),
		newAchievementsCmd(app),
		newDashboardCmd(app),
		newServeCmd(app),
	)

	return root
}

// connect opens the database and wires any services not already set.
func (a *App) connect() error {
	if a.Tasks != nil {
		return nil
	}

	catalog, policy, err := a.Config.Catalog()
	if err != nil {
		return fmt.Errorf("loading pricing: %w", err)
	}

	database, err := db.OpenDB(a.Config.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.database = database

	var observers []service.UseCaseObserver
	if a.Config.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(a.Logger))
	}

	taskRepo := repository.NewSQLiteTaskRepo(database)
	tribeRepo := repository.NewSQLiteTribeRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	a.Tasks = service.NewTaskService(taskRepo, tribeRepo, observers...)
	a.Tribes = service.NewTribeService(tribeRepo, uow, observers...)
	a.Analytics = service.NewAnalyticsService(taskRepo, tribeRepo, observers...)
	a.Pricing = service.NewPricingService(catalog, policy, repository.NewSQLiteSubscriptionRepo(database), observers...)
	a.Achievements = service.NewAchievementService(repository.NewSQLiteAchievementRepo(database), observers...)
	a.Dashboard = service.NewDashboardService(a.Analytics, a.Achievements, a.Pricing, a.Tribes, observers...)

	a.Logger.Debug("database opened", zap.String("path", a.Config.DBPath))
	return nil
}

// Close releases the database opened by connect and flushes the logger.
func (a *App) Close() error {
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	if a.database == nil {
		return nil
	}
	err := a.database.Close()
	a.database = nil
	return err
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// newLogger builds a JSON logger on stderr at the given level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
