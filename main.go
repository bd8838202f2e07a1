package main

import (
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"Brokerage/Constants"
	"Brokerage/FiberConfig"
	"Brokerage/Models"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Info("No .env file, using environment defaults")
	}

	db, err := Models.Connect(Constants.DatabasePath())
	if err != nil {
		log.WithError(err).Fatal("Failed to open database")
	}
	defer Models.Close(db)

	app := FiberConfig.NewApp(db)

	addr := Constants.ListenAddress()
	log.WithField("addr", addr).Info("Server up")
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
