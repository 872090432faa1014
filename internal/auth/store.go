package auth

import (
	"context"
	"errors"
)

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Hash      string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	State     string `json:"state"`
	CreatedAt int64  `json:"createdAt"`
}

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
)

type UserStore interface {
	CreateUser(ctx context.Context, u User) error
	UserByEmail(ctx context.Context, email string) (User, error)
	UserByID(ctx context.Context, id string) (User, error)
}
