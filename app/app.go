package app

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"donation-registry-api/internal/controller"
	"donation-registry-api/internal/repo"
	"donation-registry-api/internal/service"
	"donation-registry-api/pkg/http_server"
	"donation-registry-api/pkg/logger"
	"donation-registry-api/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

func runMigrations(postgresDB *postgres.Postgres, databaseName string) error {
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{DatabaseName: databaseName})
	if err != nil {
		return err
	}

	migrations, err := migrate.NewWithDatabaseInstance("file://migrations", databaseName, driver)
	if err != nil {
		return err
	}

	if err := migrations.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	return nil
}

func Run() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment directly")
	}

	serverAddress := os.Getenv("SERVER_ADDRESS")
	if serverAddress == "" {
		serverAddress = ":8080"
	}
	dbConn := os.Getenv("POSTGRES_CONN")
	databaseName := os.Getenv("POSTGRES_DATABASE")

	zapLog, err := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), "donation-registry-api")
	if err != nil {
		log.Fatal(err)
	}
	defer zapLog.Sync()

	zapLog.Info("connecting database")
	postgresDB, err := postgres.NewDB(dbConn)
	if err != nil {
		zapLog.Fatal("database connection failed", zap.Error(err))
	}
	defer postgresDB.Close()

	zapLog.Info("running migrations")
	if err := runMigrations(postgresDB, databaseName); err != nil {
		zapLog.Fatal("migrations failed", zap.Error(err))
	}

	repositories := repo.NewRepositories(postgresDB)
	services := service.NewServices(repositories, zapLog)
	handler := echo.New()

	controller.SetupRoutesHandlers(handler, services)

	zapLog.Info("starting server", zap.String("address", serverAddress))
	httpServer := http_server.New(handler, serverAddress)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		zapLog.Info("got signal", zap.String("signal", s.String()))
	case err = <-httpServer.Notify():
		zapLog.Error("server error", zap.Error(err))
	}

	zapLog.Info("shutting down")
	if err := httpServer.Shutdown(); err != nil {
		zapLog.Error("shutdown error", zap.Error(err))
	}
}
