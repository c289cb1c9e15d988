package mapper

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a2-coder/dvmm/internal/domain"
	"github.com/a2-coder/dvmm/internal/format"
	"github.com/a2-coder/dvmm/internal/viewmodel"
)

func strPtr(s string) *string { return &s }

func sampleUser() domain.User {
	return domain.User{
		ID:          "u1",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		Roles:       []domain.Role{{ID: "r1", Name: "admin"}, {ID: "r2", Name: "editor"}},
		CreatedAt:   "2024-03-01T09:30:00Z",
		LastLoginAt: strPtr("2025-06-19T08:00:00Z"),
	}
}

func TestTodoMapper_Example(t *testing.T) {
	d := domain.Todo{ID: "t1", Text: "Buy milk", Completed: false, DueDate: "2025-06-20T12:00:00Z"}

	v, err := TodoMapper{}.ToViewModel(d)
	require.NoError(t, err)
	assert.Equal(t, "t1", v.ID)
	assert.Equal(t, "Buy milk", v.Text)
	assert.False(t, v.IsDone)
	assert.True(t, v.DueDate.Equal(time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)))

	back, err := TodoMapper{}.ToDomainModel(v)
	require.NoError(t, err)
	assert.Equal(t, d, back)
}

func TestTodoMapper_MalformedDateFails(t *testing.T) {
	_, err := TodoMapper{}.ToViewModel(domain.Todo{ID: "t1", DueDate: "tomorrow"})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindShapeMismatch))
}

func TestProductMapper_Example(t *testing.T) {
	m := NewProductMapper(format.MustMoney("USD"))
	d := domain.Product{ID: "p1", Title: "Mug", PriceCents: 1999, Status: domain.ProductInStock, Tags: []string{"kitchen"}}

	v, err := m.ToViewModel(d)
	require.NoError(t, err)
	assert.Equal(t, "$19.99", v.Price)
	assert.Equal(t, "Mug", v.Name)
	assert.Equal(t, viewmodel.Available, v.Availability)

	back, err := m.ToDomainModel(v)
	require.NoError(t, err)
	assert.Equal(t, d, back)
	assert.Equal(t, int64(1999), back.PriceCents)
}

func TestProductMapper_ViewRoundTripIsExact(t *testing.T) {
	pm := NewProductMapper(format.MustMoney("USD"))

	cases := []struct {
		name string
		d    domain.Product
	}{
		{"nil tags", domain.Product{ID: "p1", Title: "Mug", PriceCents: 1999, Status: domain.ProductInStock}},
		{"empty tags", domain.Product{ID: "p2", Title: "Kettle", PriceCents: 0, Status: domain.ProductOutOfStock, Tags: []string{}}},
		{"tags", domain.Product{ID: "p3", Title: "Filters", PriceCents: -5, Status: domain.ProductDiscontinued, Tags: []string{"kitchen", "paper"}}},
	}

	for _, tc := range cases {
		v, err := pm.ToViewModel(tc.d)
		require.NoError(t, err, tc.name)

		again, err := RoundTripView[domain.Product, viewmodel.ProductView](pm, v)
		require.NoError(t, err, tc.name)
		assert.Equal(t, v, again, tc.name)
		assert.Equal(t, v.Tags == nil, again.Tags == nil, "%s: nil and empty tags must stay distinct", tc.name)
	}
}

func TestProductMapper_Errors(t *testing.T) {
	m := NewProductMapper(format.MustMoney("USD"))

	_, err := m.ToViewModel(domain.Product{ID: "p1", Status: "backordered"})
	assert.True(t, domain.IsKind(err, domain.KindShapeMismatch))

	_, err = m.ToDomainModel(viewmodel.ProductView{ID: "p1", Price: "19.99", Availability: viewmodel.Available})
	assert.True(t, domain.IsKind(err, domain.KindFormatMismatch))

	var oe *domain.OpError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "price", oe.Path)

	_, err = m.ToDomainModel(viewmodel.ProductView{ID: "p1", Price: "$1.00", Availability: "gone"})
	assert.True(t, domain.IsKind(err, domain.KindFormatMismatch))
}

func TestUserMapper_RolesArray(t *testing.T) {
	d := domain.User{
		ID:        "u1",
		Email:     "ada@example.com",
		Roles:     []domain.Role{{ID: "r1", Name: "admin"}},
		CreatedAt: "2024-03-01T09:30:00Z",
	}

	v, err := NewUserMapper().ToViewModel(d)
	require.NoError(t, err)
	require.Len(t, v.Roles, 1)
	assert.Equal(t, viewmodel.RoleView{ID: "r1", Label: "admin"}, v.Roles[0])
	assert.Nil(t, v.LastLoginAt)
}

func TestUserMapper_NestedDistributes(t *testing.T) {
	d := sampleUser()
	um := NewUserMapper()

	v, err := um.ToViewModel(d)
	require.NoError(t, err)

	for i, r := range d.Roles {
		want, err := RoleMapper{}.ToViewModel(r)
		require.NoError(t, err)
		assert.Equal(t, want, v.Roles[i])
	}
	assert.Equal(t, "Ada Lovelace", v.DisplayName)
	require.NotNil(t, v.LastLoginAt)
	assert.True(t, v.LastLoginAt.Equal(time.Date(2025, 6, 19, 8, 0, 0, 0, time.UTC)))
}

func TestUserMapper_RoundTrips(t *testing.T) {
	um := NewUserMapper()
	for _, d := range []domain.User{
		sampleUser(),
		{ID: "u2", Email: "x@example.com", CreatedAt: "2020-01-01T00:00:00Z"},
		{ID: "u3", Email: "y@example.com", Roles: []domain.Role{}, CreatedAt: "2020-01-01T00:00:00+01:00"},
	} {
		back, err := RoundTripDomain[domain.User, viewmodel.UserView](um, d)
		require.NoError(t, err)
		assert.Equal(t, d, back)

		v, err := um.ToViewModel(d)
		require.NoError(t, err)
		again, err := RoundTripView[domain.User, viewmodel.UserView](um, v)
		require.NoError(t, err)
		assert.Equal(t, v.ID, again.ID)
		assert.Equal(t, v.Roles, again.Roles)
		assert.Equal(t, v.DisplayName, again.DisplayName)
		assert.True(t, v.MemberSince.Equal(again.MemberSince))
	}
}

func TestUserMapper_ViewRoundTripIsExact(t *testing.T) {
	um := NewUserMapper()
	for _, d := range []domain.User{
		sampleUser(),
		{ID: "u2", FirstName: "Charles", LastName: "Babbage", Email: "c@example.com", CreatedAt: "2020-01-01T00:00:00Z"},
		{ID: "u3", FirstName: "Grace", Email: "g@example.com", Roles: []domain.Role{}, CreatedAt: "2020-01-01T00:00:00.25Z"},
	} {
		v, err := um.ToViewModel(d)
		require.NoError(t, err)

		again, err := RoundTripView[domain.User, viewmodel.UserView](um, v)
		require.NoError(t, err)
		assert.Equal(t, v, again, "user %s", d.ID)
	}
}

func TestUserMapper_ErrorPaths(t *testing.T) {
	d := sampleUser()
	d.LastLoginAt = strPtr("never")

	_, err := NewUserMapper().ToViewModel(d)
	var oe *domain.OpError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "last_login_at", oe.Path)

	failing := UserMapper{Roles: Funcs[domain.Role, viewmodel.RoleView]{
		Forward: func(r domain.Role) (viewmodel.RoleView, error) {
			return viewmodel.RoleView{}, domain.ShapeMismatch("test", "name", assert.AnError)
		},
		Inverse: RoleMapper{}.ToDomainModel,
	}}
	_, err = failing.ToViewModel(sampleUser())
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "roles[0].name", oe.Path)
}

func TestMessageMapper_OptionalAttachment(t *testing.T) {
	mm := NewMessageMapper()
	d := domain.Message{ID: "m1", Author: sampleUser(), Body: "hi", SentAt: "2025-06-20T12:00:00Z"}

	v, err := mm.ToViewModel(d)
	require.NoError(t, err)
	assert.Nil(t, v.Attachment)
	assert.Equal(t, "hi", v.Text)

	back, err := mm.ToDomainModel(v)
	require.NoError(t, err)
	assert.Nil(t, back.Attachment)
	assert.Equal(t, d, back)

	d.Attachment = &domain.Attachment{ID: "a1", URL: "/img.png", Type: "image"}
	v, err = mm.ToViewModel(d)
	require.NoError(t, err)
	require.NotNil(t, v.Attachment)
	assert.Equal(t, viewmodel.AttachmentView{ID: "a1", URL: "/img.png", Kind: "image"}, *v.Attachment)

	back, err = mm.ToDomainModel(v)
	require.NoError(t, err)
	assert.Equal(t, d, back)
}

func TestMessageMapper_ViewRoundTripIsExact(t *testing.T) {
	mm := NewMessageMapper()
	withAttachment := domain.Message{
		ID: "m1", Author: sampleUser(), Body: "Diagram attached", SentAt: "2025-06-20T12:00:00Z",
		Attachment: &domain.Attachment{ID: "a1", URL: "/img.png", Type: "image"},
	}
	withoutAttachment := domain.Message{ID: "m2", Author: sampleUser(), Body: "", SentAt: "2025-06-20T12:05:00Z"}

	for _, d := range []domain.Message{withAttachment, withoutAttachment} {
		v, err := mm.ToViewModel(d)
		require.NoError(t, err)

		again, err := RoundTripView[domain.Message, viewmodel.MessageView](mm, v)
		require.NoError(t, err)
		assert.Equal(t, v, again, "message %s", d.ID)
		assert.Equal(t, v.Attachment == nil, again.Attachment == nil)
	}
}

func TestMessageMapper_AuthorDistributes(t *testing.T) {
	mm := NewMessageMapper()
	d := domain.Message{ID: "m1", Author: sampleUser(), Body: "hi", SentAt: "2025-06-20T12:00:00Z"}

	v, err := mm.ToViewModel(d)
	require.NoError(t, err)

	author, err := NewUserMapper().ToViewModel(d.Author)
	require.NoError(t, err)
	assert.Equal(t, author, v.Author)

	d.Author.CreatedAt = "bad"
	_, err = mm.ToViewModel(d)
	var oe *domain.OpError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "author.created_at", oe.Path)
}

func TestMappers_ConcurrentUse(t *testing.T) {
	mm := NewMessageMapper()
	d := domain.Message{
		ID: "m1", Author: sampleUser(), Body: "hi", SentAt: "2025-06-20T12:00:00Z",
		Attachment: &domain.Attachment{ID: "a1", URL: "/img.png", Type: "image"},
	}

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			back, err := RoundTripDomain[domain.Message, viewmodel.MessageView](mm, d)
			if err != nil {
				errs <- err
				return
			}
			if back.Attachment == nil || back.Attachment.ID != "a1" || back.SentAt != d.SentAt {
				errs <- assert.AnError
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent round trip failed: %v", err)
	}
}
