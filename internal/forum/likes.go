package forum

import (
	"context"

	"github.com/ScottDikowitz/AA-Questions/internal/orm"
	"github.com/ScottDikowitz/AA-Questions/pkg/models"
)

func (s *Store) LikeQuestion(ctx context.Context, userID, questionID int64) error {
	l := models.QuestionLike{UserID: userID, QuestionID: questionID}
	if err := s.likes.Save(ctx, &l); err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "question liked", "user_id", userID, "question_id", questionID, "like_id", l.ID)
	return nil
}

func (s *Store) LikersForQuestion(ctx context.Context, questionID int64) ([]models.User, error) {
	rows, err := s.conn.QueryRows(ctx, `
		SELECT DISTINCT u.id, u.fname, u.lname
		FROM users u
		JOIN question_likes ql ON ql.user_id = u.id
		WHERE ql.question_id = ?`, questionID)
	if err != nil {
		return nil, err
	}

	return orm.ScanAll[models.User](rows)
}

// NumLikesForQuestion counts like rows for a question. A question with no
// likes yields 0, never an absent row.
func (s *Store) NumLikesForQuestion(ctx context.Context, questionID int64) (int64, error) {
	row := s.conn.QueryRow(ctx, `SELECT COUNT(*) FROM question_likes WHERE question_id = ?`, questionID)
	var n int64
	if err := row.Scan(&n); err != nil {
		return 0, err
	}

	return n, nil
}

func (s *Store) LikedQuestionsForUser(ctx context.Context, userID int64) ([]models.Question, error) {
	rows, err := s.conn.QueryRows(ctx, `
		SELECT DISTINCT q.id, q.title, q.body, q.user_id
		FROM questions q
		JOIN question_likes ql ON ql.question_id = q.id
		WHERE ql.user_id = ?`, userID)
	if err != nil {
		return nil, err
	}

	return orm.ScanAll[models.Question](rows)
}

// MostLikedQuestions shares the ranking contract of MostFollowedQuestions:
// descending like count, limited to n, ties non-deterministic.
func (s *Store) MostLikedQuestions(ctx context.Context, n int) ([]models.Question, error) {
	rows, err := s.conn.QueryRows(ctx, `
		SELECT q.id, q.title, q.body, q.user_id
		FROM questions q
		JOIN question_likes ql ON ql.question_id = q.id
		GROUP BY q.id
		ORDER BY COUNT(ql.id) DESC
		LIMIT ?`, n)
	if err != nil {
		return nil, err
	}

	return orm.ScanAll[models.Question](rows)
}
