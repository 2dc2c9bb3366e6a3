package validate_draft

// Request сырые контактные данные из формы бронирования
type Request struct {
	FullName string
	Phone    string
	Email    string
	Consent  bool
}

// Имена полей в ошибках валидации
const (
	FieldFullName = "fullName"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldConsent  = "consent"
)

// draftInput нормализованные данные, которые проверяет validator
type draftInput struct {
	FullName string `json:"fullName" validate:"min=3"`
	Phone    string `json:"phone" validate:"required,min=10,max=11"`
	Email    string `json:"email" validate:"omitempty,contact_email"`
	Consent  bool   `json:"consent" validate:"eq=true"`
}
