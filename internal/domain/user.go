package domain

import "fmt"

type Role struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

func (r Role) Validate() error {
	return firstError(
		requireString("id", r.ID),
		requireString("name", r.Name),
	)
}

func (Role) Shape() Shape {
	return Shape{Required: []string{"id", "name"}}
}

// User is an account as returned by the users API.
// LastLoginAt is null until the first login.
type User struct {
	ID          string  `json:"id" yaml:"id"`
	FirstName   string  `json:"first_name" yaml:"first_name"`
	LastName    string  `json:"last_name" yaml:"last_name"`
	Email       string  `json:"email" yaml:"email"`
	Roles       []Role  `json:"roles" yaml:"roles"`
	CreatedAt   string  `json:"created_at" yaml:"created_at"`
	LastLoginAt *string `json:"last_login_at" yaml:"last_login_at"`
}

func (User) Shape() Shape {
	return Shape{
		Required: []string{"id", "first_name", "last_name", "email", "created_at"},
		Each:     map[string]Shape{"roles": Role{}.Shape()},
	}
}

func (u User) Validate() error {
	if err := firstError(
		requireString("id", u.ID),
		requireString("email", u.Email),
		requireString("created_at", u.CreatedAt),
	); err != nil {
		return err
	}
	for i, r := range u.Roles {
		if err := r.Validate(); err != nil {
			return PrefixPath(fmt.Sprintf("roles[%d]", i), err)
		}
	}
	return nil
}
