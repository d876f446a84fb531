package forum

import (
	"log/slog"

	"github.com/ScottDikowitz/AA-Questions/internal/db"
	"github.com/ScottDikowitz/AA-Questions/internal/orm"
	"github.com/ScottDikowitz/AA-Questions/pkg/models"
	"github.com/ScottDikowitz/AA-Questions/pkg/repository"
)

// Store implements the repository interfaces over the internal DB wrapper.
// Generic CRUD goes through the tag-driven orm repositories; relationship
// traversals are hand-written joins sharing the same entity mapping.
type Store struct {
	conn   *db.DB
	logger *slog.Logger

	users     *orm.Repository[models.User]
	questions *orm.Repository[models.Question]
	replies   *orm.Repository[models.Reply]
	follows   *orm.Repository[models.QuestionFollow]
	likes     *orm.Repository[models.QuestionLike]
}

// Ensure Store implements the public interfaces.
var _ repository.UserRepo = (*Store)(nil)
var _ repository.QuestionRepo = (*Store)(nil)
var _ repository.ReplyRepo = (*Store)(nil)
var _ repository.FollowRepo = (*Store)(nil)
var _ repository.LikeRepo = (*Store)(nil)

func New(conn *db.DB, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	users, err := orm.NewRepository[models.User](conn)
	if err != nil {
		return nil, err
	}
	questions, err := orm.NewRepository[models.Question](conn)
	if err != nil {
		return nil, err
	}
	replies, err := orm.NewRepository[models.Reply](conn)
	if err != nil {
		return nil, err
	}
	follows, err := orm.NewRepository[models.QuestionFollow](conn)
	if err != nil {
		return nil, err
	}
	likes, err := orm.NewRepository[models.QuestionLike](conn)
	if err != nil {
		return nil, err
	}

	return &Store{
		conn:      conn,
		logger:    logger,
		users:     users,
		questions: questions,
		replies:   replies,
		follows:   follows,
		likes:     likes,
	}, nil
}
