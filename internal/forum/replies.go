package forum

import (
	"context"
	"fmt"

	"github.com/ScottDikowitz/AA-Questions/internal/orm"
	"github.com/ScottDikowitz/AA-Questions/pkg/models"
)

func (s *Store) SaveReply(ctx context.Context, r *models.Reply) error {
	if r == nil {
		return fmt.Errorf("reply is nil")
	}

	return s.replies.Save(ctx, r)
}

func (s *Store) ReplyByID(ctx context.Context, id int64) (*models.Reply, error) {
	return s.replies.FindByID(ctx, id)
}

func (s *Store) ReplyAuthor(ctx context.Context, r *models.Reply) (*models.User, error) {
	if r == nil {
		return nil, fmt.Errorf("reply is nil")
	}

	return s.users.FindByID(ctx, r.AuthorID)
}

func (s *Store) ReplyQuestion(ctx context.Context, r *models.Reply) (*models.Question, error) {
	if r == nil {
		return nil, fmt.Errorf("reply is nil")
	}

	return s.questions.FindByID(ctx, r.QuestionID)
}

// ParentReply returns orm.ErrNotFound for a top-level reply.
func (s *Store) ParentReply(ctx context.Context, r *models.Reply) (*models.Reply, error) {
	if r == nil {
		return nil, fmt.Errorf("reply is nil")
	}
	if r.ParentID == nil {
		return nil, orm.ErrNotFound
	}

	return s.replies.FindByID(ctx, *r.ParentID)
}

// ChildReplies returns the direct children only, not the whole subtree.
func (s *Store) ChildReplies(ctx context.Context, replyID int64) ([]models.Reply, error) {
	return s.replies.FindWhere(ctx, orm.Cond{Column: "parent_id", Value: replyID})
}
