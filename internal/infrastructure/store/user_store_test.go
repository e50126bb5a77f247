package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seventechnologies/hireat-api/internal/domain/entity"
	"github.com/seventechnologies/hireat-api/internal/infrastructure/memory"
	"github.com/seventechnologies/hireat-api/internal/infrastructure/store"
)

const masterEmail = "admin@seventechnologies.cloud"

func newUserStore() (*store.UserStore, *memory.KV) {
	kv := memory.NewKV()
	return store.NewUserStore(kv, masterEmail), kv
}

func TestUserStore_RoundTrip(t *testing.T) {
	s, _ := newUserStore()
	ctx := context.Background()

	in := &entity.User{
		Email:       "ana@example.com",
		FirstName:   "Ana",
		LastName:    "García",
		Role:        entity.RoleUser,
		Permissions: []string{"manage_jobs"},
		Skills:      []entity.Skill{{Name: "Go", Years: "5"}},
	}
	require.NoError(t, s.Save(ctx, in))

	out, err := s.Get(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.FirstName, out.FirstName)
	assert.Equal(t, in.Permissions, out.Permissions)
	assert.Equal(t, in.Skills, out.Skills)
}

func TestUserStore_GetInexistente_DevuelveNil(t *testing.T) {
	s, _ := newUserStore()
	out, err := s.Get(context.Background(), "nadie@example.com")
	require.NoError(t, err)
	assert.Nil(t, out, "clave ausente debe devolver nil sin error")
}

// Un blob ilegible degrada a un registro mínimo con solo el email: nunca se
// propaga como error.
func TestUserStore_BlobIlegible_DegradaARegistroMinimo(t *testing.T) {
	s, kv := newUserStore()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "rota@example.com", []byte("{esto no es json")))

	out, err := s.Get(ctx, "rota@example.com")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "rota@example.com", out.Email)
	assert.Empty(t, out.Permissions)
	assert.Empty(t, out.Role)
}

func TestUserStore_SaveSinArroba_Falla(t *testing.T) {
	s, _ := newUserStore()
	err := s.Save(context.Background(), &entity.User{Email: "sin-arroba"})
	assert.Error(t, err)
}

// List: identidad maestra primero, luego rol admin, luego alfabético. Las
// claves derivadas (_applied_jobs / _saved_jobs) no son usuarios.
func TestUserStore_List_OrdenYFiltrado(t *testing.T) {
	s, kv := newUserStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &entity.User{Email: "zoe@seventechnologies.cloud", Role: entity.RoleUser}))
	require.NoError(t, s.Save(ctx, &entity.User{Email: "bruno@seventechnologies.cloud", Role: entity.RoleAdmin}))
	require.NoError(t, s.Save(ctx, &entity.User{Email: masterEmail, Role: entity.RoleAdmin}))
	require.NoError(t, s.Save(ctx, &entity.User{Email: "fuera@gmail.com", Role: entity.RoleUser}))
	require.NoError(t, kv.Set(ctx, "zoe@seventechnologies.cloud_applied_jobs", []byte("[1,2]")))

	users, err := s.List(ctx, "@seventechnologies.cloud")
	require.NoError(t, err)
	require.Len(t, users, 3, "el dominio filtra y las claves derivadas no cuentan")

	assert.Equal(t, masterEmail, users[0].Email, "la identidad maestra va primero")
	assert.Equal(t, "bruno@seventechnologies.cloud", users[1].Email, "luego los rol admin")
	assert.Equal(t, "zoe@seventechnologies.cloud", users[2].Email)
}

func TestUserStore_PurgeSessions_ConservaMaster(t *testing.T) {
	s, kv := newUserStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &entity.User{Email: masterEmail, Role: entity.RoleAdmin}))
	require.NoError(t, s.Save(ctx, &entity.User{Email: "ana@example.com"}))
	require.NoError(t, kv.Set(ctx, "recentJobSearches", []byte(`["go"]`)))

	require.NoError(t, s.PurgeSessions(ctx, true))

	master, err := s.Get(ctx, masterEmail)
	require.NoError(t, err)
	assert.NotNil(t, master, "la identidad maestra sobrevive la purga")

	ana, err := s.Get(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Nil(t, ana)

	raw, err := kv.Get(ctx, "recentJobSearches")
	require.NoError(t, err)
	assert.NotNil(t, raw, "las claves que no son de usuario no se tocan")
}
