package auth

import (
	"context"
	"database/sql"
	"errors"

	"github.com/roadready/roadready-backend/internal/db"
)

type SQLUserStore struct {
	db *sql.DB
}

func NewSQLUserStore(dbh *sql.DB) *SQLUserStore { return &SQLUserStore{db: dbh} }

func (s *SQLUserStore) CreateUser(ctx context.Context, u User) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO users (id,email,password_hash,first_name,last_name,state,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		u.ID, u.Email, u.Hash, u.FirstName, u.LastName, u.State, u.CreatedAt)
	if db.IsUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

func (s *SQLUserStore) UserByEmail(ctx context.Context, email string) (User, error) {
	return s.scanOne(s.db.QueryRowContext(ctx,
		`SELECT id,email,password_hash,first_name,last_name,state,created_at FROM users WHERE email=$1`, email))
}

func (s *SQLUserStore) UserByID(ctx context.Context, id string) (User, error) {
	return s.scanOne(s.db.QueryRowContext(ctx,
		`SELECT id,email,password_hash,first_name,last_name,state,created_at FROM users WHERE id=$1`, id))
}

func (s *SQLUserStore) scanOne(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Hash, &u.FirstName, &u.LastName, &u.State, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}
