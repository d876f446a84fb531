package forum

import (
	"context"
	"fmt"

	"github.com/ScottDikowitz/AA-Questions/internal/orm"
	"github.com/ScottDikowitz/AA-Questions/pkg/models"
)

func (s *Store) SaveQuestion(ctx context.Context, q *models.Question) error {
	if q == nil {
		return fmt.Errorf("question is nil")
	}

	return s.questions.Save(ctx, q)
}

func (s *Store) QuestionByID(ctx context.Context, id int64) (*models.Question, error) {
	return s.questions.FindByID(ctx, id)
}

func (s *Store) AllQuestions(ctx context.Context) ([]models.Question, error) {
	return s.questions.FindAll(ctx)
}

// QuestionAuthor returns orm.ErrNotFound for an authorless question.
func (s *Store) QuestionAuthor(ctx context.Context, q *models.Question) (*models.User, error) {
	if q == nil {
		return nil, fmt.Errorf("question is nil")
	}
	if q.AuthorID == nil {
		return nil, orm.ErrNotFound
	}

	return s.users.FindByID(ctx, *q.AuthorID)
}

func (s *Store) RepliesForQuestion(ctx context.Context, questionID int64) ([]models.Reply, error) {
	return s.replies.FindWhere(ctx, orm.Cond{Column: "question_id", Value: questionID})
}
