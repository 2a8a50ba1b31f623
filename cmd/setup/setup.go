package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/publibudget/go-commitment-engine/internal/common/graceful"
	"github.com/publibudget/go-commitment-engine/internal/common/idgenerator"
	"github.com/publibudget/go-commitment-engine/internal/common/log"
	cMetrics "github.com/publibudget/go-commitment-engine/internal/common/metrics"
	"github.com/publibudget/go-commitment-engine/internal/common/publisher"
	"github.com/publibudget/go-commitment-engine/internal/common/retry"
	"github.com/publibudget/go-commitment-engine/internal/config"
	"github.com/publibudget/go-commitment-engine/internal/repositories"
	"github.com/publibudget/go-commitment-engine/internal/services"
)

type Setup struct {
	Config  config.Config
	WriteDB *sql.DB
	ReadDB  *sql.DB
	Service *services.Services
	Metrics cMetrics.Metrics
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load(os.Getenv("CE_CONFIG_FILE"))
	if err != nil {
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	if err = log.Init(cfg.App.LogOption, cfg.App.LogLevel); err != nil {
		return
	}

	stopper = append(stopper, func(ctx context.Context) error {
		return log.Sync()
	})

	// metrics
	mtc := cMetrics.New()

	// connect to db master
	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	// register DB write stat prometheus metrics
	err = mtc.RegisterDB(writeDB, cfg.App.Name+"-"+command+"-write", cfg.Postgres.Write.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}
	// register DB read stat prometheus metrics
	err = mtc.RegisterDB(readDB, cfg.App.Name+"-"+command+"-read", cfg.Postgres.Read.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)

	balancePub, postingPub, pubStoppers, err := setupPublishers(ctx, cfg)
	if err != nil {
		return
	}
	stopper = append(stopper, pubStoppers...)

	// register service
	srv := services.New(
		cfg,
		sqlRepo,
		balancePub,
		postingPub,
		idgenerator.New(),
		services.NewClock(),
		retry.NewExponentialBackOff(&cfg.ExponentialBackoff),
		mtc,
	)

	return &Setup{
		Config:  cfg,
		WriteDB: writeDB,
		ReadDB:  readDB,
		Service: srv,
		Metrics: mtc,
	}, stopper, nil
}

// setupPublishers wires the kafka event publishers. With the broker disabled
// in configuration the services get no-op publishers instead.
func setupPublishers(ctx context.Context, cfg config.Config) (balancePub, postingPub publisher.Publisher, stopper []graceful.ProcessStopper, err error) {
	if !cfg.MessageBroker.PublisherEnabled {
		log.Info(ctx, "[SETUP] message broker disabled, events will not be published")
		return publisher.NewNoopPublisher(), publisher.NewNoopPublisher(), nil, nil
	}

	producer, err := publisher.NewKafkaSyncProducer(cfg.MessageBroker.Brokers)
	if err != nil {
		err = fmt.Errorf("unable to create client kafka sync producer: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return producer.Close() })

	balancePub = publisher.NewPublisher(producer, cfg.MessageBroker.BalanceEventTopic)
	postingPub = publisher.NewPublisher(producer, cfg.MessageBroker.PostingEventTopic)

	return balancePub, postingPub, stopper, nil
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("postgres", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
