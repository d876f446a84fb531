package forum

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ScottDikowitz/AA-Questions/internal/orm"
	"github.com/ScottDikowitz/AA-Questions/pkg/models"
)

func (s *Store) SaveUser(ctx context.Context, u *models.User) error {
	if u == nil {
		return fmt.Errorf("user is nil")
	}

	return s.users.Save(ctx, u)
}

func (s *Store) UserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

// UserByName is the hand-written two-column lookup the dynamic finder
// convention generalizes. It returns orm.ErrNotFound when no user matches.
func (s *Store) UserByName(ctx context.Context, fname, lname string) (*models.User, error) {
	rows, err := s.conn.QueryRows(ctx, `SELECT id, fname, lname FROM users WHERE fname = ? AND lname = ?`, fname, lname)
	if err != nil {
		return nil, err
	}

	found, err := orm.ScanAll[models.User](rows)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, orm.ErrNotFound
	}

	return &found[0], nil
}

func (s *Store) AllUsers(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *Store) AuthoredQuestions(ctx context.Context, userID int64) ([]models.Question, error) {
	return s.questions.FindWhere(ctx, orm.Cond{Column: "user_id", Value: userID})
}

func (s *Store) AuthoredReplies(ctx context.Context, userID int64) ([]models.Reply, error) {
	return s.replies.FindBy(ctx, "find_by_user_id", userID)
}

// AverageKarma is the number of likes across the user's authored questions
// divided by the number of distinct questions authored, as a real-valued
// average. A user with no authored questions has karma 0.
func (s *Store) AverageKarma(ctx context.Context, userID int64) (float64, error) {
	row := s.conn.QueryRow(ctx, `
		SELECT CAST(COUNT(ql.id) AS REAL) / COUNT(DISTINCT q.id)
		FROM questions q
		LEFT JOIN question_likes ql ON ql.question_id = q.id
		WHERE q.user_id = ?`, userID)

	// the division is NULL when the user authored nothing
	var karma sql.NullFloat64
	if err := row.Scan(&karma); err != nil {
		return 0, err
	}

	return karma.Float64, nil
}
