package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/terraincognita07/phased/internal/api"
	"github.com/terraincognita07/phased/internal/cli"
	"github.com/terraincognita07/phased/internal/config"
	"github.com/terraincognita07/phased/internal/db"
	"github.com/terraincognita07/phased/internal/logger"
	"github.com/terraincognita07/phased/internal/security"
	"github.com/terraincognita07/phased/internal/services"
	"github.com/terraincognita07/phased/internal/session"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	commandServe    = "serve"
	commandProfiles = "profiles"
	commandCalendar = "calendar"
	commandExport   = "export"
)

type command struct {
	name      string
	profileID string
	start     string
	out       string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, os.Stdin); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "phased: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer, stdin *os.File) error {
	cmd, err := parseCommand(args, stderr)
	if err != nil {
		return err
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync(log)

	app, err := newApplication(cfg, log)
	if err != nil {
		return err
	}
	defer app.close()

	runner := &cli.Runner{Profiles: app.profiles, Exports: app.exports, Out: stdout, In: stdin}
	switch cmd.name {
	case commandProfiles:
		return runner.ListProfiles()
	case commandCalendar:
		start, err := cli.ParseDate(cmd.start, cfg.Location())
		if err != nil {
			return err
		}
		return runner.PrintCalendar(cmd.profileID, start)
	case commandExport:
		return runner.Export(cmd.profileID, cmd.out)
	default:
		return serve(cfg, app, log)
	}
}

// parseCommand splits args into a subcommand and its flags. No subcommand means serve.
func parseCommand(args []string, output io.Writer) (command, error) {
	name := commandServe
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		name, args = args[0], args[1:]
	}

	cmd := command{name: name}
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(output)
	switch name {
	case commandServe, commandProfiles:
	case commandCalendar:
		flags.StringVar(&cmd.profileID, "profile", "", "profile id")
		flags.StringVar(&cmd.start, "start", "", "first calendar day, YYYY-MM-DD")
	case commandExport:
		flags.StringVar(&cmd.profileID, "profile", "", "profile id")
		flags.StringVar(&cmd.out, "out", "", "output file, stdout when empty or -")
	default:
		return command{}, fmt.Errorf("unknown command %q (want serve, profiles, calendar or export)", name)
	}

	if err := flags.Parse(args); err != nil {
		return command{}, err
	}
	if flags.NArg() > 0 {
		return command{}, fmt.Errorf("%s: unexpected arguments %v", name, flags.Args())
	}
	if (name == commandCalendar || name == commandExport) && cmd.profileID == "" {
		return command{}, fmt.Errorf("%s: -profile is required", name)
	}
	return cmd, nil
}

type application struct {
	database *gorm.DB
	profiles *services.ProfileService
	logs     *services.DayLogService
	exports  *services.ExportService
}

func newApplication(cfg *config.Config, log *zap.SugaredLogger) (*application, error) {
	keyMode, err := security.ParseKeyMode(cfg.Security.EncryptionKeyMode)
	if err != nil {
		return nil, err
	}

	database, err := db.OpenSQLite(cfg.Database.Path, log)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	location := cfg.Location()
	repositories := db.NewRepositories(database)
	locks := services.NewProfileLocks()
	return &application{
		database: database,
		profiles: services.NewProfileService(services.ProfileServiceDeps{
			Profiles: repositories.Profiles,
			Logs:     repositories.DayLogs,
			Cipher:   security.NewDataCipher(keyMode),
			Locks:    locks,
			Location: location,
			Log:      log.Named("profiles"),
		}),
		logs:    services.NewDayLogService(repositories.DayLogs, repositories.Profiles, locks, location, log.Named("logs")),
		exports: services.NewExportService(repositories.Profiles, repositories.DayLogs),
	}, nil
}

func (app *application) close() {
	if sqlDB, err := app.database.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func serve(cfg *config.Config, app *application, log *zap.SugaredLogger) error {
	sessions := session.NewManager(cfg.Session.TTL)
	sweeper, err := session.StartSweeper(sessions, cfg.Session.SweepInterval, log.Named("sessions"))
	if err != nil {
		return err
	}
	if sweeper != nil {
		defer func() { _ = sweeper.Shutdown() }()
	}

	handler, err := api.NewHandler(api.HandlerDeps{
		Profiles:  app.profiles,
		Logs:      app.logs,
		Exports:   app.exports,
		Sessions:  sessions,
		SecretKey: cfg.Security.SecretKey,
		Location:  cfg.Location(),
		Log:       log,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}
	server := api.NewApp(handler, api.AppConfig{TrustProxy: cfg.Server.TrustProxy})

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.ShutdownWithContext(shutdownCtx); err != nil {
			log.Errorw("server shutdown failed", "error", err)
		}
		sessions.ClearAll()
	}()

	log.Infow("phased listening",
		"addr", "0.0.0.0:"+strconv.Itoa(cfg.Server.Port),
		"db", cfg.Database.Path,
		"tz", cfg.Location().String(),
	)
	if err := server.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}
