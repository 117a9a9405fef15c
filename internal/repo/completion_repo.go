package repo

import (
	"context"

	dom "challengeboard/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CompletionRepo provides the completion ledger. CreateAndAward is the only
// write path that touches users.points.
type CompletionRepo interface {
	Exists(ctx context.Context, userID, challengeID int64) (bool, error)
	// CreateAndAward inserts the completion row and adds points to the user
	// in one transaction, returning the new row and the user's new total.
	// A unique violation on the insert (concurrent duplicate) surfaces as a
	// pgconn error with code 23505.
	CreateAndAward(ctx context.Context, userID, challengeID int64, points int) (dom.Completion, int, error)
	ChallengeIDs(ctx context.Context, userID int64) ([]int64, error)
}

// PGCompletionRepo implements CompletionRepo with Postgres.
type PGCompletionRepo struct {
	db *pgxpool.Pool
}

// NewPGCompletionRepo returns a new PGCompletionRepo.
func NewPGCompletionRepo(db *pgxpool.Pool) *PGCompletionRepo {
	return &PGCompletionRepo{db: db}
}

// Exists reports whether the user has already completed the challenge.
func (r *PGCompletionRepo) Exists(ctx context.Context, userID, challengeID int64) (bool, error) {
	var found bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM completions WHERE user_id = $1 AND challenge_id = $2)`,
		userID, challengeID,
	).Scan(&found)
	return found, err
}

// CreateAndAward inserts the ledger row and increments the user's points
// atomically. Both commit together or neither does.
func (r *PGCompletionRepo) CreateAndAward(ctx context.Context, userID, challengeID int64, points int) (dom.Completion, int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return dom.Completion{}, 0, err
	}
	defer tx.Rollback(ctx)

	c := dom.Completion{UserID: userID, ChallengeID: challengeID}
	err = tx.QueryRow(ctx,
		`INSERT INTO completions (user_id, challenge_id) VALUES ($1, $2)
		 RETURNING id, completed_at`,
		userID, challengeID,
	).Scan(&c.ID, &c.CompletedAt)
	if err != nil {
		return dom.Completion{}, 0, err
	}

	var total int
	err = tx.QueryRow(ctx,
		`UPDATE users SET points = points + $2 WHERE id = $1 RETURNING points`,
		userID, points,
	).Scan(&total)
	if err != nil {
		return dom.Completion{}, 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return dom.Completion{}, 0, err
	}
	return c, total, nil
}

// ChallengeIDs returns the IDs of all challenges the user has completed.
func (r *PGCompletionRepo) ChallengeIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT challenge_id FROM completions WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
