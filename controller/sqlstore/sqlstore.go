package sqlstore

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq" // Import pq driver.

	"github.com/battlesnakeio/holosnake/config"
	"github.com/battlesnakeio/holosnake/controller"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const migrations = `
CREATE TABLE IF NOT EXISTS high_scores (
	id INTEGER PRIMARY KEY,
	score INTEGER NOT NULL,
	updated TIMESTAMP NOT NULL DEFAULT now()
);
`

// scoreRow is the single row holding the high score.
const scoreRow = 1

// NewSQLStore returns a new store using a postgres database.
func NewSQLStore(url string) (*Store, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)

	if err = db.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to reach database")
	}

	_, err = db.ExecContext(ctx, migrations)
	if err != nil {
		return nil, errors.Wrap(err, "unable to migrate")
	}
	return &Store{db: db}, nil
}

// Store represents an SQL store.
type Store struct {
	db *sql.DB
}

// transact is a transaction wrapper, helps avoid failed to close connections.
func (s *Store) transact(
	ctx context.Context, txFunc func(*sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			if rErr := tx.Rollback(); rErr != nil {
				log.WithError(rErr).Error("rollback failed")
			}
			panic(p) // re-throw panic after Rollback
		} else if err != nil {
			// err is non-nil; don't change it
			if rErr := tx.Rollback(); rErr != nil {
				log.WithError(rErr).Error("rollback failed")
			}
		} else {
			err = tx.Commit() // err is nil; if Commit returns error update err
		}
	}()
	err = txFunc(tx)
	return err
}

// GetHighScore reads the high score row.
func (s *Store) GetHighScore(ctx context.Context) (int, error) {
	var score int
	r := s.db.QueryRowContext(ctx, `SELECT score FROM high_scores WHERE id=$1`, scoreRow)
	if err := r.Scan(&score); err != nil {
		if err == sql.ErrNoRows {
			return 0, controller.ErrNotFound
		}
		return 0, errors.Wrap(err, "unable to read high score")
	}
	return score, nil
}

// PutHighScore upserts the high score row.
func (s *Store) PutHighScore(ctx context.Context, score int) error {
	err := s.transact(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO high_scores (id, score, updated) VALUES ($1, $2, now())
		ON CONFLICT (id)
		DO UPDATE SET score=$2, updated=now()`,
			scoreRow, score,
		)
		return err
	})
	return errors.Wrap(err, "unable to write high score")
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
