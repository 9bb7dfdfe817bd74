// Package pgx provides a PostgreSQL-backed AccountStore on pgxpool.
//
// Expected schema:
//
//	CREATE TABLE accounts (
//	    id              text PRIMARY KEY,
//	    email           text NOT NULL UNIQUE,
//	    hashed_password text NOT NULL,
//	    session_id      text,
//	    reset_token     text,
//	    created_at      timestamptz NOT NULL DEFAULT now(),
//	    updated_at      timestamptz NOT NULL DEFAULT now()
//	);
package pgx

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jmallari/gatehouse/core"
)

type Store struct {
	pool *pgxpool.Pool
}

var _ core.AccountStore = (*Store)(nil)

func New(pool *pgxpool.Pool) *Store {
	return &Store{
		pool: pool,
	}
}
