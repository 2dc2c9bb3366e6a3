package directory

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Repository справочник специалистов в памяти.
// Заполняется один раз при старте, дальше только читается, поэтому блокировки не нужны.
type Repository struct {
	professionals []*domain.Professional
	byID          map[string]*domain.Professional
	byEmail       map[string]*domain.Professional
}

// NewRepository создает справочник. Порядок professionals сохраняется,
// первый специалист считается специалистом по умолчанию
func NewRepository(professionals []*domain.Professional) (*Repository, error) {
	if len(professionals) == 0 {
		return nil, ErrEmptyDirectory
	}

	r := &Repository{
		professionals: make([]*domain.Professional, 0, len(professionals)),
		byID:          make(map[string]*domain.Professional, len(professionals)),
		byEmail:       make(map[string]*domain.Professional, len(professionals)),
	}

	for _, p := range professionals {
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: id %s", ErrDuplicateProfessional, p.ID)
		}
		email := normalizeEmail(p.Email)
		if _, dup := r.byEmail[email]; dup {
			return nil, fmt.Errorf("%w: email %s", ErrDuplicateProfessional, p.Email)
		}

		r.professionals = append(r.professionals, p)
		r.byID[p.ID] = p
		r.byEmail[email] = p
	}

	return r, nil
}

// GetByID ищет специалиста по точному совпадению id
func (r *Repository) GetByID(id string) (*domain.Professional, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %q", ErrProfessionalNotFound, id)
	}
	return p, nil
}

// GetByEmail ищет специалиста по email без учета регистра и пробелов по краям
func (r *Repository) GetByEmail(email string) (*domain.Professional, error) {
	p, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, ErrProfessionalNotFound
	}
	return p, nil
}

// Default возвращает специалиста по умолчанию
func (r *Repository) Default() *domain.Professional {
	return r.professionals[0]
}

// ListPublic возвращает публичные профили в порядке справочника
func (r *Repository) ListPublic() []domain.PublicProfile {
	result := make([]domain.PublicProfile, 0, len(r.professionals))
	for _, p := range r.professionals {
		result = append(result, p.Public())
	}
	return result
}

// ListAll возвращает полные записи. Срез копируется, сами записи только для чтения
func (r *Repository) ListAll() []*domain.Professional {
	return append([]*domain.Professional(nil), r.professionals...)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
