// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/transcat/catalogue"
	"github.com/katalvlaran/transcat/internal/config"
	"github.com/katalvlaran/transcat/internal/requests"
	"github.com/katalvlaran/transcat/internal/storage"
	"github.com/katalvlaran/transcat/router"
	"github.com/katalvlaran/transcat/store"
	"github.com/katalvlaran/transcat/transport"
)

var errNoSnapshotPath = errors.New("no snapshot path: set serialization_settings.file or storage.path")

// app runs one CLI mode over the given streams.
type app struct {
	cfg    *config.AppConfig
	logger *slog.Logger
	in     io.Reader
	out    io.Writer
}

func (a *app) makeBase(ctx context.Context) error {
	doc, err := requests.Decode(a.in)
	if err != nil {
		return err
	}

	db := catalogue.New()
	if err := requests.ApplyBase(db, doc.BaseRequests); err != nil {
		return fmt.Errorf("load base requests: %w", err)
	}

	settings := transport.Settings{BusWaitTime: a.cfg.Routing.BusWaitTime, BusVelocity: a.cfg.Routing.BusVelocity}
	if doc.RoutingSettings != nil {
		settings = doc.RoutingSettings.Settings()
	}

	path, err := a.snapshotPath(doc)
	if err != nil {
		return err
	}

	if a.cfg.Storage.Backend == "sqlite" {
		sdb, err := storage.Open(path, a.logger)
		if err != nil {
			return err
		}
		defer sdb.Close()
		return sdb.SaveCatalogue(ctx, db, &settings)
	}

	if err := store.SaveFile(path, db, store.WithRouting(settings)); err != nil {
		return err
	}
	a.logger.Info("catalogue saved", "path", path, "stops", db.StopCount(), "buses", db.BusCount())
	return nil
}

func (a *app) processRequests(ctx context.Context) error {
	doc, err := requests.Decode(a.in)
	if err != nil {
		return err
	}

	path, err := a.snapshotPath(doc)
	if err != nil {
		return err
	}
	snap, err := a.loadSnapshot(ctx, path)
	if err != nil {
		return err
	}

	strategy := router.StrategyDijkstra
	if a.cfg.Routing.Algorithm == "floyd_warshall" {
		strategy = router.StrategyFloydWarshall
	}
	tr := transport.New(snap.Catalogue, a.logger,
		transport.WithCacheSize(a.cfg.Cache.RouteQueries),
		transport.WithStrategy(strategy),
	)
	settings := transport.Settings{BusWaitTime: a.cfg.Routing.BusWaitTime, BusVelocity: a.cfg.Routing.BusVelocity}
	if snap.Routing != nil {
		settings = *snap.Routing
	}
	if err := tr.SetSettings(settings); err != nil {
		return err
	}
	if err := tr.Build(ctx); err != nil {
		return err
	}

	handler := requests.NewHandler(snap.Catalogue, tr, a.logger)
	return requests.Encode(a.out, handler.AnswerAll(doc.StatRequests))
}

func (a *app) loadSnapshot(ctx context.Context, path string) (*store.Snapshot, error) {
	if a.cfg.Storage.Backend == "sqlite" {
		sdb, err := storage.Open(path, a.logger)
		if err != nil {
			return nil, err
		}
		defer sdb.Close()
		return sdb.LoadCatalogue(ctx)
	}

	return store.LoadFile(path)
}

func (a *app) snapshotPath(doc *requests.Document) (string, error) {
	if doc.SerializationSettings != nil {
		return doc.SerializationSettings.File, nil
	}
	if a.cfg.Storage.Path != "" {
		return a.cfg.Storage.Path, nil
	}

	return "", errNoSnapshotPath
}
