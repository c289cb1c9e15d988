package viewmodel

import "time"

type RoleView struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

type UserView struct {
	ID        string `json:"id" yaml:"id"`
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" yaml:"lastName"`
	// DisplayName is derived from FirstName and LastName.
	DisplayName string     `json:"displayName" yaml:"displayName"`
	Email       string     `json:"email" yaml:"email"`
	Roles       []RoleView `json:"roles" yaml:"roles"`
	MemberSince time.Time  `json:"memberSince" yaml:"memberSince"`
	LastLoginAt *time.Time `json:"lastLoginAt" yaml:"lastLoginAt"`
}
