package model

import "time"

// User data model
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Article data model. CreatedAt keeps full precision in storage; the
// response payload renders it as a display string.
type Article struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"` // the author
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"-"`
}
