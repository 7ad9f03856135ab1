package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Khosrovf/Khosro8/internal/domain"
	"github.com/Khosrovf/Khosro8/pkg/config"
)

// NewPool crea un pool de conexiones PostgreSQL acotado según la configuración
// (mínimo/máximo de conexiones). El pool es el único
// recurso mutable compartido: cada operación adquiere una conexión exclusiva
// y la devuelve al terminar (pgxpool lo garantiza).
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MinConns = cfg.PoolMinConns
	poolConfig.MaxConns = cfg.PoolMaxConns
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// Registrar codec para NUMERIC/DECIMAL -> shopspring/decimal (todas las conexiones del pool).
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

// acquireContext aplica el timeout de espera del pool si está configurado.
// Con timeout cero se espera indefinidamente (decisión explícita de configuración).
func acquireContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// mapAcquireError traduce el vencimiento del timeout de espera del pool a
// domain.ErrPoolExhausted. Si el contexto del caller ya estaba cancelado, el
// error original se respeta (fue el caller quien abandonó, no el pool).
func mapAcquireError(err error, callerCtx, acquireCtx context.Context) error {
	if err == nil {
		return nil
	}
	if errors.Is(acquireCtx.Err(), context.DeadlineExceeded) && callerCtx.Err() == nil {
		return domain.ErrPoolExhausted
	}
	return err
}
