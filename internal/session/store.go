package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/nominapp/nominacli/internal/dbx"
	"github.com/nominapp/nominacli/internal/models"
	"github.com/nominapp/nominacli/internal/session/migrations"
)

// Storage keys. Both are written and cleared together; the store never leaves
// one present without the other.
const (
	keyToken   = "token"
	keyUsuario = "usuario"
)

// Store persists the bearer token and the serialized current user in a local
// sqlite key/value table, so a restarted client can restore its session.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the session database at dsn and brings
// its schema up to date.
func OpenStore(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("migrate session db: %w", err)
	}

	return &Store{db: db}, nil
}

// NewStore wraps an already opened and migrated database. Used by tests.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes the token and the serialized user in one transaction.
func (s *Store) Save(ctx context.Context, token string, u *models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("serialize user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyToken, []byte(token)); err != nil {
			return err
		}
		return set(ctx, tx, keyUsuario, raw)
	})
}

// Read returns the stored token and cached user. An absent token yields
// ("", nil, nil). An absent cached user yields (token, nil, nil) — the caller
// is expected to revalidate against the backend. A present but undecodable
// user is an error.
func (s *Store) Read(ctx context.Context) (string, *models.User, error) {
	token, err := get(ctx, s.db, keyToken)
	if err != nil {
		return "", nil, err
	}
	if len(token) == 0 {
		return "", nil, nil
	}

	raw, err := get(ctx, s.db, keyUsuario)
	if err != nil {
		return "", nil, err
	}
	if len(raw) == 0 {
		return string(token), nil, nil
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return "", nil, fmt.Errorf("decode cached user: %w", err)
	}
	return string(token), &u, nil
}

// Clear removes both keys in one transaction. Clearing an already empty
// store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM credenciales WHERE clave = ?`, keyToken); err != nil {
			return fmt.Errorf("clear %s: %w", keyToken, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM credenciales WHERE clave = ?`, keyUsuario); err != nil {
			return fmt.Errorf("clear %s: %w", keyUsuario, err)
		}
		return nil
	})
}

func get(ctx context.Context, db dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT valor FROM credenciales WHERE clave = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credential %s: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO credenciales (clave, valor) VALUES (?, ?)
		ON CONFLICT(clave) DO UPDATE SET valor = excluded.valor
	`, key, value)
	if err != nil {
		return fmt.Errorf("write credential %s: %w", key, err)
	}
	return nil
}
