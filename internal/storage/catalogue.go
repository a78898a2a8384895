// SPDX-License-Identifier: MIT

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/katalvlaran/transcat/catalogue"
	"github.com/katalvlaran/transcat/geo"
	"github.com/katalvlaran/transcat/store"
	"github.com/katalvlaran/transcat/transport"
)

const (
	settingWaitTime = "bus_wait_time"
	settingVelocity = "bus_velocity"
)

// SaveCatalogue replaces the stored snapshot with db and, when non-nil, the
// routing settings. The whole write is one transaction.
func (db *DB) SaveCatalogue(ctx context.Context, cat *catalogue.Database, settings *transport.Settings) error {
	start := time.Now()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"bus_stops", "buses", "distances", "stops", "settings"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	stops := cat.Stops()
	ids := make(map[*catalogue.Stop]int, len(stops))
	for i, s := range stops {
		ids[s] = i
	}
	if err := insertRows(ctx, tx, `INSERT INTO stops (id, name, lat, lng) VALUES (?, ?, ?, ?)`, len(stops),
		func(i int) []any {
			return []any{i, stops[i].Name, stops[i].Coordinates.Lat, stops[i].Coordinates.Lng}
		}); err != nil {
		return fmt.Errorf("insert stops: %w", err)
	}

	dists := cat.Distances()
	if err := insertRows(ctx, tx, `INSERT INTO distances (seq, from_id, to_id, meters) VALUES (?, ?, ?, ?)`, len(dists),
		func(i int) []any {
			return []any{i, ids[dists[i].From], ids[dists[i].To], dists[i].Distance.Road}
		}); err != nil {
		return fmt.Errorf("insert distances: %w", err)
	}

	buses := cat.Buses()
	if err := insertRows(ctx, tx, `INSERT INTO buses (id, name, is_roundtrip) VALUES (?, ?, ?)`, len(buses),
		func(i int) []any {
			return []any{i, buses[i].Name, buses[i].IsRoundtrip}
		}); err != nil {
		return fmt.Errorf("insert buses: %w", err)
	}

	type busStop struct{ bus, seq, stop int }
	var route []busStop
	for b, bus := range buses {
		for seq, stop := range bus.Route {
			route = append(route, busStop{bus: b, seq: seq, stop: ids[stop]})
		}
	}
	if err := insertRows(ctx, tx, `INSERT INTO bus_stops (bus_id, seq, stop_id) VALUES (?, ?, ?)`, len(route),
		func(i int) []any {
			return []any{route[i].bus, route[i].seq, route[i].stop}
		}); err != nil {
		return fmt.Errorf("insert bus stops: %w", err)
	}

	if settings != nil {
		if _, err := tx.ExecContext(ctx, `INSERT INTO settings (key, value) VALUES (?, ?), (?, ?)`,
			settingWaitTime, settings.BusWaitTime, settingVelocity, settings.BusVelocity); err != nil {
			return fmt.Errorf("insert settings: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	db.logger.Info("catalogue saved",
		"stops", len(stops),
		"buses", len(buses),
		"distances", len(dists),
		"elapsed", time.Since(start),
	)
	return nil
}

// insertRows runs a prepared insert n times with the arguments produced by row.
func insertRows(ctx context.Context, tx *sql.Tx, query string, n int, row func(i int) []any) error {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, row(i)...); err != nil {
			return err
		}
	}
	return nil
}

// LoadCatalogue rebuilds the stored snapshot. An empty database yields an
// empty catalogue and nil routing settings.
func (db *DB) LoadCatalogue(ctx context.Context) (*store.Snapshot, error) {
	cat := catalogue.New()
	names := make(map[int]string)

	rows, err := db.QueryContext(ctx, `SELECT id, name, lat, lng FROM stops ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query stops: %w", err)
	}
	for rows.Next() {
		var (
			id   int
			name string
			c    geo.Coordinates
		)
		if err := rows.Scan(&id, &name, &c.Lat, &c.Lng); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan stop: %w", err)
		}
		if _, err := cat.AddStop(name, c); err != nil {
			rows.Close()
			return nil, err
		}
		names[id] = name
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = db.QueryContext(ctx, `SELECT from_id, to_id, meters FROM distances ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query distances: %w", err)
	}
	for rows.Next() {
		var from, to int
		var meters float64
		if err := rows.Scan(&from, &to, &meters); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan distance: %w", err)
		}
		if err := cat.SetMeasuredDistance(names[from], names[to], meters); err != nil {
			rows.Close()
			return nil, err
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := db.loadBuses(ctx, cat, names); err != nil {
		return nil, err
	}

	routing, err := db.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	db.logger.Info("catalogue loaded", "stops", cat.StopCount(), "buses", cat.BusCount())
	return &store.Snapshot{Catalogue: cat, Routing: routing}, nil
}

func (db *DB) loadBuses(ctx context.Context, cat *catalogue.Database, names map[int]string) error {
	rows, err := db.QueryContext(ctx, `
		SELECT b.id, b.name, b.is_roundtrip, bs.stop_id
		FROM buses AS b
		LEFT JOIN bus_stops AS bs ON bs.bus_id = b.id
		ORDER BY b.id, bs.seq`)
	if err != nil {
		return fmt.Errorf("query buses: %w", err)
	}
	defer rows.Close()

	type pending struct {
		name      string
		roundtrip bool
		route     []string
	}
	var (
		order []int
		byID  = make(map[int]*pending)
	)
	for rows.Next() {
		var (
			id        int
			name      string
			roundtrip bool
			stopID    sql.NullInt64
		)
		if err := rows.Scan(&id, &name, &roundtrip, &stopID); err != nil {
			return fmt.Errorf("scan bus: %w", err)
		}
		p, ok := byID[id]
		if !ok {
			p = &pending{name: name, roundtrip: roundtrip}
			byID[id] = p
			order = append(order, id)
		}
		if stopID.Valid {
			p.route = append(p.route, names[int(stopID.Int64)])
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, id := range order {
		p := byID[id]
		if _, err := cat.AddBus(p.name, p.route, p.roundtrip); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) loadSettings(ctx context.Context) (*transport.Settings, error) {
	rows, err := db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}
	defer rows.Close()

	values := make(map[string]float64)
	for rows.Next() {
		var key string
		var value float64
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	wait, okWait := values[settingWaitTime]
	velocity, okVelocity := values[settingVelocity]
	if !okWait || !okVelocity {
		return nil, nil
	}
	return &transport.Settings{BusWaitTime: wait, BusVelocity: velocity}, nil
}
