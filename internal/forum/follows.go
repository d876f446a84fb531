package forum

import (
	"context"

	"github.com/ScottDikowitz/AA-Questions/internal/orm"
	"github.com/ScottDikowitz/AA-Questions/pkg/models"
)

func (s *Store) FollowQuestion(ctx context.Context, userID, questionID int64) error {
	f := models.QuestionFollow{UserID: userID, QuestionID: questionID}
	if err := s.follows.Save(ctx, &f); err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "question followed", "user_id", userID, "question_id", questionID, "follow_id", f.ID)
	return nil
}

func (s *Store) FollowersForQuestion(ctx context.Context, questionID int64) ([]models.User, error) {
	rows, err := s.conn.QueryRows(ctx, `
		SELECT u.id, u.fname, u.lname
		FROM users u
		JOIN question_follows qf ON qf.user_id = u.id
		WHERE qf.question_id = ?`, questionID)
	if err != nil {
		return nil, err
	}

	return orm.ScanAll[models.User](rows)
}

func (s *Store) FollowedQuestionsForUser(ctx context.Context, userID int64) ([]models.Question, error) {
	rows, err := s.conn.QueryRows(ctx, `
		SELECT q.id, q.title, q.body, q.user_id
		FROM questions q
		JOIN question_follows qf ON qf.question_id = q.id
		WHERE qf.user_id = ?`, userID)
	if err != nil {
		return nil, err
	}

	return orm.ScanAll[models.Question](rows)
}

// MostFollowedQuestions ranks questions by descending follow count,
// limited to n. Ties fall back to SQLite's default ordering, so order
// between equal counts is not deterministic.
func (s *Store) MostFollowedQuestions(ctx context.Context, n int) ([]models.Question, error) {
	rows, err := s.conn.QueryRows(ctx, `
		SELECT q.id, q.title, q.body, q.user_id
		FROM questions q
		JOIN question_follows qf ON qf.question_id = q.id
		GROUP BY q.id
		ORDER BY COUNT(qf.id) DESC
		LIMIT ?`, n)
	if err != nil {
		return nil, err
	}

	return orm.ScanAll[models.Question](rows)
}
