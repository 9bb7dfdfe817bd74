package pgx

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"

	"github.com/jmallari/gatehouse/core"
)

const accountColumns = "id, email, hashed_password, session_id, reset_token, created_at, updated_at"

func (s *Store) Create(ctx context.Context, email, hashedPassword string) (*core.Account, error) {
	if email == "" {
		return nil, core.ErrEmailRequired
	}
	if hashedPassword == "" {
		return nil, core.ErrPasswordRequired
	}

	acct := &core.Account{
		ID:             uuid.NewString(),
		Email:          email,
		HashedPassword: hashedPassword,
	}

	query := `INSERT INTO accounts (id, email, hashed_password) VALUES ($1, $2, $3) RETURNING created_at, updated_at`

	err := s.pool.QueryRow(ctx, query, acct.ID, acct.Email, acct.HashedPassword).
		Scan(&acct.CreatedAt, &acct.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, oops.Code("ACCOUNT_DUPLICATE").
				With("email", email).
				Wrap(core.ErrDuplicateAccount)
		}
		return nil, oops.Code("ACCOUNT_CREATE_FAILED").
			With("operation", "insert account").
			Wrap(err)
	}

	return acct, nil
}

func (s *Store) FindOne(ctx context.Context, filter map[string]any) (*core.Account, error) {
	if err := core.ValidateFilter(filter); err != nil {
		return nil, err
	}

	clauses, args := buildClauses(filter, false)
	// LIMIT 2 is enough to distinguish "exactly one" from "ambiguous".
	query := fmt.Sprintf("SELECT %s FROM accounts WHERE %s LIMIT 2",
		accountColumns, strings.Join(clauses, " AND "))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, oops.Code("ACCOUNT_FIND_FAILED").
			With("operation", "query accounts").
			Wrap(err)
	}
	defer rows.Close()

	var accounts []*core.Account
	for rows.Next() {
		acct := &core.Account{}
		if err := rows.Scan(&acct.ID, &acct.Email, &acct.HashedPassword, &acct.SessionID, &acct.ResetToken, &acct.CreatedAt, &acct.UpdatedAt); err != nil {
			return nil, oops.Code("ACCOUNT_FIND_FAILED").
				With("operation", "scan account").
				Wrap(err)
		}
		accounts = append(accounts, acct)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("ACCOUNT_FIND_FAILED").Wrap(err)
	}

	if len(accounts) != 1 {
		return nil, core.ErrNotFound
	}

	return accounts[0], nil
}

func (s *Store) Update(ctx context.Context, id string, fields map[string]any) error {
	if err := core.ValidateFilter(fields); err != nil {
		return err
	}

	clauses, args := buildClauses(fields, true)
	args = append(args, time.Now(), id)
	query := fmt.Sprintf(
		"UPDATE accounts SET %s, updated_at = $%d WHERE id = $%d",
		strings.Join(clauses, ", "), len(args)-1, len(args),
	)

	// One transaction per mutation: concurrent updates against the same
	// account serialize at the row instead of interleaving field writes.
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return oops.Code("ACCOUNT_UPDATE_FAILED").
			With("operation", "begin tx").
			Wrap(err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return oops.Code("ACCOUNT_UPDATE_FAILED").
			With("operation", "update account").
			With("id", id).
			Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}

	return tx.Commit(ctx)
}

// buildClauses renders validated filter fields into "col = $n" fragments.
// Keys are sorted so generated SQL is deterministic. A nil value renders as
// "IS NULL" in match position and as a NULL assignment otherwise.
func buildClauses(fields map[string]any, assign bool) ([]string, []any) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var clauses []string
	var args []any
	for _, key := range keys {
		value := fields[key]
		if value == nil {
			if assign {
				clauses = append(clauses, fmt.Sprintf("%s = NULL", key))
			} else {
				clauses = append(clauses, fmt.Sprintf("%s IS NULL", key))
			}
			continue
		}
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", key, len(args)))
	}

	return clauses, args
}
