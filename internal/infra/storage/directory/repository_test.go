package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

func professionals() []*domain.Professional {
	return []*domain.Professional{
		{ID: "p-1", Name: "Dra. Camila Nogueira", Email: "camila.nogueira@gmail.com", AvatarURL: "/a.svg", DefaultDuration: domain.Duration60, Bio: "bio", Address: "addr"},
		{ID: "p-2", Name: "Coach Pedro Azevedo", Email: "Pedro.Azevedo@gmail.com", DefaultDuration: domain.Duration30},
	}
}

func TestNewRepository_Errors(t *testing.T) {
	_, err := NewRepository(nil)
	assert.ErrorIs(t, err, ErrEmptyDirectory)

	dupID := professionals()
	dupID[1].ID = "p-1"
	_, err = NewRepository(dupID)
	assert.ErrorIs(t, err, ErrDuplicateProfessional)

	dupEmail := professionals()
	dupEmail[1].Email = " CAMILA.NOGUEIRA@gmail.com "
	_, err = NewRepository(dupEmail)
	assert.ErrorIs(t, err, ErrDuplicateProfessional)
}

func TestRepository_GetByID(t *testing.T) {
	repo, err := NewRepository(professionals())
	require.NoError(t, err)

	p, err := repo.GetByID("p-2")
	require.NoError(t, err)
	assert.Equal(t, "Coach Pedro Azevedo", p.Name)

	_, err = repo.GetByID("P-2")
	assert.ErrorIs(t, err, ErrProfessionalNotFound)

	_, err = repo.GetByID("")
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestRepository_GetByEmail(t *testing.T) {
	repo, err := NewRepository(professionals())
	require.NoError(t, err)

	for _, email := range []string{"camila.nogueira@gmail.com", "  Camila.Nogueira@GMAIL.com "} {
		p, err := repo.GetByEmail(email)
		require.NoError(t, err, email)
		assert.Equal(t, "p-1", p.ID)
	}

	p, err := repo.GetByEmail("pedro.azevedo@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "p-2", p.ID)

	_, err = repo.GetByEmail("nobody@gmail.com")
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestRepository_ListPublic(t *testing.T) {
	repo, err := NewRepository(professionals())
	require.NoError(t, err)

	list := repo.ListPublic()
	require.Len(t, list, 2)
	assert.Equal(t, domain.PublicProfile{
		ID:              "p-1",
		Name:            "Dra. Camila Nogueira",
		Email:           "camila.nogueira@gmail.com",
		AvatarURL:       "/a.svg",
		DefaultDuration: domain.Duration60,
	}, list[0])
	assert.Equal(t, "p-2", list[1].ID)
}

func TestRepository_ListAllAndDefault(t *testing.T) {
	repo, err := NewRepository(professionals())
	require.NoError(t, err)

	all := repo.ListAll()
	require.Len(t, all, 2)
	assert.Equal(t, "addr", all[0].Address)

	all[0] = nil
	assert.NotNil(t, repo.ListAll()[0])

	assert.Equal(t, "p-1", repo.Default().ID)
}
