package repository

import (
	"context"

	"github.com/ScottDikowitz/AA-Questions/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; the concrete implementation lives under
// internal/forum.

type UserRepo interface {
	SaveUser(ctx context.Context, u *models.User) error
	UserByID(ctx context.Context, id int64) (*models.User, error)
	UserByName(ctx context.Context, fname, lname string) (*models.User, error)
	AllUsers(ctx context.Context) ([]models.User, error)
	AuthoredQuestions(ctx context.Context, userID int64) ([]models.Question, error)
	AuthoredReplies(ctx context.Context, userID int64) ([]models.Reply, error)
	AverageKarma(ctx context.Context, userID int64) (float64, error)
}

type QuestionRepo interface {
	SaveQuestion(ctx context.Context, q *models.Question) error
	QuestionByID(ctx context.Context, id int64) (*models.Question, error)
	AllQuestions(ctx context.Context) ([]models.Question, error)
	QuestionAuthor(ctx context.Context, q *models.Question) (*models.User, error)
	RepliesForQuestion(ctx context.Context, questionID int64) ([]models.Reply, error)
}

type ReplyRepo interface {
	SaveReply(ctx context.Context, r *models.Reply) error
	ReplyByID(ctx context.Context, id int64) (*models.Reply, error)
	ReplyAuthor(ctx context.Context, r *models.Reply) (*models.User, error)
	ReplyQuestion(ctx context.Context, r *models.Reply) (*models.Question, error)
	ParentReply(ctx context.Context, r *models.Reply) (*models.Reply, error)
	ChildReplies(ctx context.Context, replyID int64) ([]models.Reply, error)
}

type FollowRepo interface {
	FollowQuestion(ctx context.Context, userID, questionID int64) error
	FollowersForQuestion(ctx context.Context, questionID int64) ([]models.User, error)
	FollowedQuestionsForUser(ctx context.Context, userID int64) ([]models.Question, error)
	MostFollowedQuestions(ctx context.Context, n int) ([]models.Question, error)
}

type LikeRepo interface {
	LikeQuestion(ctx context.Context, userID, questionID int64) error
	LikersForQuestion(ctx context.Context, questionID int64) ([]models.User, error)
	NumLikesForQuestion(ctx context.Context, questionID int64) (int64, error)
	LikedQuestionsForUser(ctx context.Context, userID int64) ([]models.Question, error)
	MostLikedQuestions(ctx context.Context, n int) ([]models.Question, error)
}
