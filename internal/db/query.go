package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/admission/internal/pkg/apperrors"
	"github.com/yigit/admission/internal/pkg/dberrors"
	"github.com/yigit/admission/internal/pkg/logger"
)

// RowScanner is satisfied by *sql.Row and *sql.Rows
type RowScanner interface {
	Scan(dest ...any) error
}

// WithConn acquires a connection, runs fn and always releases it.
// When acquisition fails fn is not called and nothing is released.
func (p *Provider) WithConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(conn)
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx *sql.Tx) error

// WithTransaction runs fn inside a transaction on a single scoped connection.
// The transaction is rolled back when fn fails or panics.
func (p *Provider) WithTransaction(ctx context.Context, fn TransactionFn) error {
	return p.WithConn(ctx, func(conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return classify(fmt.Errorf("failed to begin transaction: %w", err))
		}

		defer func() {
			if r := recover(); r != nil {
				_ = tx.Rollback()
				panic(r)
			}
		}()

		if err := fn(ctx, tx); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			}
			return err
		}

		if err := tx.Commit(); err != nil {
			return classify(fmt.Errorf("failed to commit transaction: %w", err))
		}
		return nil
	})
}

// FetchAll runs a read and maps every row. No rows yields an empty slice.
func FetchAll[T any](ctx context.Context, p *Provider, query squirrel.Sqlizer, scan func(RowScanner) (T, error)) ([]T, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	records := []T{}
	err = p.WithConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, sqlStr, args...)
		if err != nil {
			return classify(err)
		}
		defer rows.Close()

		for rows.Next() {
			record, err := scan(rows)
			if err != nil {
				return classify(err)
			}
			records = append(records, record)
		}
		if err := rows.Err(); err != nil {
			return classify(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// FetchOne returns the first row of a read. Zero rows yields notFound.
func FetchOne[T any](ctx context.Context, p *Provider, query squirrel.Sqlizer, scan func(RowScanner) (T, error), notFound error) (T, error) {
	var record T
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return record, fmt.Errorf("failed to build query: %w", err)
	}

	err = p.WithConn(ctx, func(conn *sql.Conn) error {
		var scanErr error
		record, scanErr = scan(conn.QueryRowContext(ctx, sqlStr, args...))
		if errors.Is(scanErr, sql.ErrNoRows) {
			return notFound
		}
		if scanErr != nil {
			return classify(scanErr)
		}
		return nil
	})
	return record, err
}

// Exists reports whether a read yields at least one row
func Exists(ctx context.Context, p *Provider, query squirrel.Sqlizer) (bool, error) {
	_, err := FetchOne(ctx, p, query, func(row RowScanner) (int, error) {
		var one int
		err := row.Scan(&one)
		return one, err
	}, errNoRow)
	if errors.Is(err, errNoRow) {
		return false, nil
	}
	return err == nil, err
}

var errNoRow = errors.New("no row")

// Exec runs a single auto-committed write on its own connection
func Exec(ctx context.Context, p *Provider, query squirrel.Sqlizer) (int64, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build statement: %w", err)
	}

	var affected int64
	err = p.WithConn(ctx, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, sqlStr, args...)
		if err != nil {
			return classify(err)
		}
		affected, err = res.RowsAffected()
		if err != nil {
			return classify(err)
		}
		return nil
	})
	return affected, err
}

// ExecAffecting runs an update or delete; zero affected rows yields notFound
func ExecAffecting(ctx context.Context, p *Provider, query squirrel.Sqlizer, notFound error) error {
	affected, err := Exec(ctx, p, query)
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

// ExecTx runs a write inside an open transaction
func ExecTx(ctx context.Context, tx *sql.Tx, query squirrel.Sqlizer) error {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build statement: %w", err)
	}
	if _, err := tx.ExecContext(ctx, sqlStr, args...); err != nil {
		return classify(err)
	}
	return nil
}

// classify converts a raw driver error into the application taxonomy
func classify(err error) error {
	if dberrors.IsDuplicateKeyError(err) {
		return apperrors.NewConflictError(err)
	}
	return apperrors.NewInternalError(err)
}
