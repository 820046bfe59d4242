// cmd/seeder/main.go
// Imports the json fixtures of _data into the database, or deletes every
// document the api stores.
//
// Usage:
//
//	go run ./cmd/seeder -i
//	go run ./cmd/seeder -d
package main

import (
	"context"
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/linesmerrill/devcamper-api/api"
	"github.com/linesmerrill/devcamper-api/config"
	"github.com/linesmerrill/devcamper-api/databases"
	"github.com/linesmerrill/devcamper-api/geocoder"
	"github.com/linesmerrill/devcamper-api/seeder"
)

func main() {
	var importData, destroyData bool
	var dir string
	flag.BoolVar(&importData, "i", false, "import the fixtures")
	flag.BoolVar(&destroyData, "d", false, "delete all data")
	flag.StringVar(&dir, "data", "_data", "fixture directory")
	flag.Parse()

	if importData == destroyData {
		flag.Usage()
		os.Exit(2)
	}

	conf := config.New()
	defer func() { _ = zap.L().Sync() }()

	client, err := databases.NewClient(conf)
	if err != nil {
		zap.S().Fatalw("failed to create new client", "error", err)
	}

	ctx, cancel := api.WithJobTimeout(context.Background())
	defer cancel()

	if err = client.Connect(ctx); err != nil {
		zap.S().Fatalw("failed to connect to database", "error", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := databases.NewDatabase(conf, client)

	var geo geocoder.Geocoder
	if conf.GeocoderAPIKey != "" {
		if geo, err = geocoder.NewGoogle(conf.GeocoderAPIKey); err != nil {
			zap.S().Fatalw("failed to create geocoder", "error", err)
		}
	}
	s := seeder.New(db, geo)

	if destroyData {
		if err = s.Destroy(ctx); err != nil {
			zap.S().Fatalw("failed to destroy data", "error", err)
		}
		zap.S().Info("data destroyed")
		return
	}

	fixtures, err := seeder.Load(dir)
	if err != nil {
		zap.S().Fatalw("failed to load fixtures", "dir", dir, "error", err)
	}
	if err = databases.EnsureIndexes(ctx, db); err != nil {
		zap.S().Fatalw("failed to create indexes", "error", err)
	}
	if err = s.Import(ctx, fixtures); err != nil {
		zap.S().Fatalw("failed to import data", "error", err)
	}
	zap.S().Info("data imported")
}
