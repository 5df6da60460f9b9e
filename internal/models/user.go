package models

import (
	"database/sql"
	"time"
)

// User is the row shape of the users table.
type User struct {
	ID             string         `db:"id"`
	Email          string         `db:"email"`
	PasswordHash   sql.NullString `db:"password_hash"`
	Name           string         `db:"name"`
	GoogleID       sql.NullString `db:"google_id"`
	FacebookID     sql.NullString `db:"facebook_id"`
	TwitterID      sql.NullString `db:"twitter_id"`
	ProfilePicture sql.NullString `db:"profile_picture"`
	Role           string         `db:"role"`
	Timestamps
	DeletedAt *time.Time `db:"deleted_at"`
}
