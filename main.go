package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yldio/xbbcode/api"
	db "github.com/yldio/xbbcode/db/sqlc"
	"github.com/yldio/xbbcode/profile"
	"github.com/yldio/xbbcode/tmpstore"
	"github.com/yldio/xbbcode/token"
	"github.com/yldio/xbbcode/util"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	// reading .env config file
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Configure the validator to use json tags for field names in errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}

	// catching interrupt signals for graceful shutdown
	// stop() or a signal catch makes context Done
	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	// Postgres connection
	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to the database")
	}

	store := db.NewStore(conn)

	// running db migrations every time the server starts
	// it's idempotent, so the schema establishes only once if no new versions added
	runDBMigration(config.MigrationURL, config.DBSource)

	seedProfiles(ctx, config, store)

	// waitgroup which manages goroutines for starting and stopping HTTP server
	waitGroup, ctx := errgroup.WithContext(ctx)

	RunGinServer(ctx, waitGroup, config, store)

	err = waitGroup.Wait()
	if err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

func runDBMigration(migrationURL string, dbSource string) {
	mig, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create new migrate instance")
	}

	if err = mig.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal().Err(err).Msg("failed to run migrate up")
	}

	log.Info().Msg("db migrated successfully")
}

// seedProfiles loads the optional YAML seed file and stores every profile
// it defines. A profile that already exists is left alone, so seeding is
// idempotent across restarts.
func seedProfiles(ctx context.Context, config util.Config, store db.Store) {
	if config.SeedProfilesPath == "" {
		return
	}

	defs, err := profile.LoadDefinitions(config.SeedProfilesPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load seed profiles")
	}

	for _, def := range defs {
		arg := db.CreateProfileTxParams{
			CreateProfileParams: db.CreateProfileParams{
				Name:        def.Name,
				Description: util.StringToPgxText(&def.Description),
			},
		}

		for _, tag := range def.Tags {
			arg.Tags = append(arg.Tags, db.CreateProfileTxTag{
				Name:        strings.ToLower(tag.Name),
				Template:    tag.Template,
				SelfClosing: tag.SelfClosing,
				NoCode:      tag.NoCode,
			})
		}

		_, err := store.CreateProfileTx(ctx, arg)

		if errors.Is(err, db.ErrDuplicateProfile) {
			// already seeded on an earlier start
			continue
		}

		if err != nil {
			log.Fatal().Err(err).Str("profile", def.Name).Msg("cannot seed profile")
		}

		log.Info().Str("profile", def.Name).Msg("profile seeded")
	}
}

func RunGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	store db.Store,
) {
	rs := tmpstore.NewStore(&config)

	tokenMaker, err := token.NewJWTMaker(config.TokenSymmetricKey)
	if err != nil {
		log.Error().Err(err).Msg("failed to create JWT token maker")
		return
	}

	service, err := api.NewService(config, store, tokenMaker, rs)

	if err != nil {
		log.Error().Err(err).Msg("cannot create HTTP service")
		return
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", config.HTTPServerAddress)

		err := service.Start()

		if err != nil {
			//http.ErrServerClosed is returned once the server begins shutting down
			// which is normal
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			log.Error().Err(err).Msg("cannot start HTTP server")
		}

		return err
	})

	waitGroup.Go(func() error {
		<-ctx.Done()

		log.Info().Msg("HTTP server: graceful shutdown")

		// give the server 5 secs to finish all his processes
		toCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := service.Shutdown(toCtx)

		if err != nil {
			log.Error().Err(err).Msg("cannot shutdown HTTP server gracefully")
		}

		// closing the db connection pool
		store.Shutdown()

		log.Info().Msg("render server is stopped")

		return err
	})
}
