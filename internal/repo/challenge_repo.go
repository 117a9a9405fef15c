package repo

import (
	"context"

	dom "challengeboard/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ChallengeRepo provides read access to the challenge catalog plus the
// one-time seed insert.
type ChallengeRepo interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, challenges []dom.Challenge) error
	List(ctx context.Context) ([]dom.Challenge, error)
	GetByID(ctx context.Context, id int64) (dom.Challenge, error)
}

// PGChallengeRepo implements ChallengeRepo with Postgres.
type PGChallengeRepo struct {
	db *pgxpool.Pool
}

// NewPGChallengeRepo returns a new PGChallengeRepo.
func NewPGChallengeRepo(db *pgxpool.Pool) *PGChallengeRepo {
	return &PGChallengeRepo{db: db}
}

// Count returns the number of catalog rows.
func (r *PGChallengeRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM challenges`).Scan(&n)
	return n, err
}

// CreateBatch inserts the given challenges in a single transaction.
func (r *PGChallengeRepo) CreateBatch(ctx context.Context, challenges []dom.Challenge) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, c := range challenges {
		if _, err := tx.Exec(ctx,
			`INSERT INTO challenges (title, description, points) VALUES ($1, $2, $3)`,
			c.Title, c.Description, c.Points,
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// List returns all challenges ordered by point value descending.
func (r *PGChallengeRepo) List(ctx context.Context) ([]dom.Challenge, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, points FROM challenges ORDER BY points DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Challenge
	for rows.Next() {
		var c dom.Challenge
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Points); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID returns the challenge by ID.
func (r *PGChallengeRepo) GetByID(ctx context.Context, id int64) (dom.Challenge, error) {
	var c dom.Challenge
	err := r.db.QueryRow(ctx,
		`SELECT id, title, description, points FROM challenges WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Title, &c.Description, &c.Points)
	return c, err
}
