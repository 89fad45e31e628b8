// Package postgres implementa los mismos puertos de persistencia que jsonfile
// sobre PostgreSQL, para instalaciones que ya superaron el archivo plano. Se
// selecciona con STORAGE_DRIVER=postgres; el resolver y la validación no se
// enteran del cambio de backend.
//
// Esquema esperado:
//
//	CREATE TABLE productos (
//	    sku       text PRIMARY KEY,
//	    nombre    text NOT NULL DEFAULT '',
//	    categoria text NOT NULL DEFAULT '',
//	    stock     double precision NOT NULL DEFAULT 0,
//	    precio    numeric NOT NULL DEFAULT 0
//	);
//	CREATE TABLE movements (
//	    id       text PRIMARY KEY,
//	    date     timestamptz NOT NULL,
//	    product  text NOT NULL DEFAULT '',
//	    sku      text NOT NULL DEFAULT '',
//	    movement text NOT NULL,
//	    quantity double precision NOT NULL,
//	    usuario  text NOT NULL DEFAULT 'System'
//	);
package postgres

import (
	"context"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invopos/inventario-lite/pkg/config"
)

// Querier es lo mínimo que necesitan los repositorios; lo satisface el pool.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPool crea el pool de conexiones con el codec NUMERIC -> shopspring/decimal
// registrado en todas las conexiones.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.HealthCheckPeriod = time.Minute
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}
