package sqlstore

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq" // Import pq driver.

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/controller"
	"github.com/pkg/errors"
)

const migrations = `
CREATE TABLE IF NOT EXISTS high_scores (
	key VARCHAR(255) PRIMARY KEY,
	score INTEGER NOT NULL,
	updated TIMESTAMP NOT NULL DEFAULT now()
);
`

// NewSQLStore returns a new store using a postgres database.
func NewSQLStore(url string) (*Store, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "unable to connect")
	}

	_, err = db.ExecContext(ctx, migrations)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "unable to run migrations")
	}
	return &Store{db: db}, nil
}

// Store represents an SQL store.
type Store struct {
	db *sql.DB
}

// GetHighScore reads the score stored under key.
func (s *Store) GetHighScore(ctx context.Context, key string) (int, error) {
	r := s.db.QueryRowContext(ctx, `SELECT score FROM high_scores WHERE key=$1`, key)

	var score int
	if err := r.Scan(&score); err != nil {
		if err == sql.ErrNoRows {
			return 0, controller.ErrNotFound
		}
		return 0, err
	}
	return score, nil
}

// PutHighScore will insert the score, or raise the stored one. A lower score
// leaves the row untouched.
func (s *Store) PutHighScore(ctx context.Context, key string, score int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO high_scores (key, score) VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET score=$2, updated=now()
		WHERE high_scores.score < $2`,
		key, score,
	)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
