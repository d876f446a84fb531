package models

// Domain models matching the database schema in db/migrations/0001_init.sql.
// Each struct mirrors one row; nullable foreign keys are pointer fields.
// An entity with a zero ID has not been persisted yet.

type User struct {
	ID    int64  `json:"id" db:"id,pk"`
	FName string `json:"fname" db:"fname" validate:"required"`
	LName string `json:"lname" db:"lname" validate:"required"`
}

func (User) Table() string { return "users" }

type Question struct {
	ID       int64  `json:"id" db:"id,pk"`
	Title    string `json:"title" db:"title" validate:"required"`
	Body     string `json:"body" db:"body" validate:"required"`
	AuthorID *int64 `json:"user_id,omitempty" db:"user_id"`
}

func (Question) Table() string { return "questions" }

// Reply is one node of a question's reply thread. A nil ParentID marks a
// top-level reply; child chains may nest arbitrarily deep.
type Reply struct {
	ID         int64  `json:"id" db:"id,pk"`
	ParentID   *int64 `json:"parent_id,omitempty" db:"parent_id"`
	QuestionID int64  `json:"question_id" db:"question_id"`
	AuthorID   int64  `json:"user_id" db:"user_id"`
	Body       string `json:"body" db:"body" validate:"required"`
}

func (Reply) Table() string { return "replies" }

// QuestionFollow records that a user follows a question. Duplicates are
// permitted; each row counts toward follow totals.
type QuestionFollow struct {
	ID         int64 `json:"id" db:"id,pk"`
	UserID     int64 `json:"user_id" db:"user_id"`
	QuestionID int64 `json:"question_id" db:"question_id"`
}

func (QuestionFollow) Table() string { return "question_follows" }

// QuestionLike records a like. Duplicates are permitted and meaningful:
// repeated likes by the same user count toward totals.
type QuestionLike struct {
	ID         int64 `json:"id" db:"id,pk"`
	UserID     int64 `json:"user_id" db:"user_id"`
	QuestionID int64 `json:"question_id" db:"question_id"`
}

func (QuestionLike) Table() string { return "question_likes" }
