package main

import (
	"context"
	"fmt"
	"os"

	"mailroom/cmd"
	httpadapter "mailroom/internal/adapters/in/http"
	"mailroom/internal/adapters/out/postgres/parcelrepo"
	"mailroom/internal/adapters/out/postgres/recipientrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)
	if err := app.RecipientDirectory().Seed(context.Background()); err != nil {
		log.Fatalf("Error seeding recipient directory: %v", err)
	}

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(&parcelrepo.ParcelDTO{}, &recipientrepo.EntryDTO{})
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateRegisterParcelCommandHandler(),
		app.CreateDeliverParcelCommandHandler(),
		app.CreateReclassifyStaleParcelsCommandHandler(),
		app.CreateSearchParcelsQueryHandler(),
		app.CreateMatchRecipientsQueryHandler(),
		app.CreateParcelStatisticsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
