package mapper

import (
	"strings"

	"github.com/a2-coder/dvmm/internal/domain"
	"github.com/a2-coder/dvmm/internal/format"
	"github.com/a2-coder/dvmm/internal/viewmodel"
)

type RoleMapper struct{}

var _ Mapper[domain.Role, viewmodel.RoleView] = RoleMapper{}

func (RoleMapper) ToViewModel(d domain.Role) (viewmodel.RoleView, error) {
	return viewmodel.RoleView{ID: d.ID, Label: d.Name}, nil
}

func (RoleMapper) ToDomainModel(v viewmodel.RoleView) (domain.Role, error) {
	return domain.Role{ID: v.ID, Name: v.Label}, nil
}

// UserMapper maps roles element-wise and parses both timestamps.
//
// DisplayName is derived on the way to the view and ignored on the way back,
// so a hand-built view whose DisplayName disagrees with its names does not
// survive a view round trip unchanged.
type UserMapper struct {
	Roles Mapper[domain.Role, viewmodel.RoleView]
}

func NewUserMapper() UserMapper {
	return UserMapper{Roles: RoleMapper{}}
}

var _ Mapper[domain.User, viewmodel.UserView] = UserMapper{}

func (m UserMapper) ToViewModel(d domain.User) (viewmodel.UserView, error) {
	roles, err := Slice(m.Roles, d.Roles)
	if err != nil {
		return viewmodel.UserView{}, WithField("roles", err)
	}
	since, err := format.ParseTimestamp("created_at", d.CreatedAt)
	if err != nil {
		return viewmodel.UserView{}, err
	}
	lastLogin, err := format.ParseOptionalTimestamp("last_login_at", d.LastLoginAt)
	if err != nil {
		return viewmodel.UserView{}, err
	}
	return viewmodel.UserView{
		ID:          d.ID,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		DisplayName: DisplayName(d.FirstName, d.LastName),
		Email:       d.Email,
		Roles:       roles,
		MemberSince: since,
		LastLoginAt: lastLogin,
	}, nil
}

func (m UserMapper) ToDomainModel(v viewmodel.UserView) (domain.User, error) {
	roles, err := SliceInverse(m.Roles, v.Roles)
	if err != nil {
		return domain.User{}, WithField("roles", err)
	}
	return domain.User{
		ID:          v.ID,
		FirstName:   v.FirstName,
		LastName:    v.LastName,
		Email:       v.Email,
		Roles:       roles,
		CreatedAt:   format.FormatTimestamp(v.MemberSince),
		LastLoginAt: format.FormatOptionalTimestamp(v.LastLoginAt),
	}, nil
}

// DisplayName joins the non-empty name parts with a single space.
func DisplayName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
