package validate_draft

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// emailTag тег правила contact_email в draftInput
const emailTag = "contact_email"

// local@domain.tld без пробелов
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Сообщения об ошибках для клиента
const (
	msgFullNameTooShort = "Имя должно содержать не менее 3 символов"
	msgPhoneRequired    = "Укажите телефон"
	msgPhoneLength      = "Телефон должен содержать 10 или 11 цифр"
	msgEmailInvalid     = "Некорректный email"
	msgConsentRequired  = "Необходимо принять условия обслуживания"
)

// newValidator настраивает validator: имена полей берутся из json тегов
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation(emailTag, func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("validate_draft: register %s: %v", emailTag, err))
	}

	return v
}

// normalize приводит сырые данные к виду, в котором они хранятся в черновике
func normalize(req *Request) draftInput {
	return draftInput{
		FullName: strings.TrimSpace(req.FullName),
		Phone:    digitsOnly(req.Phone),
		Email:    strings.TrimSpace(req.Email),
		Consent:  req.Consent,
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// fieldErrors переводит ошибки validator в сообщения по полям.
// На каждое поле остается одно сообщение
func fieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		if _, exists := fields[fe.Field()]; exists {
			continue
		}
		fields[fe.Field()] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Field() {
	case FieldFullName:
		return msgFullNameTooShort
	case FieldPhone:
		if fe.Tag() == "required" {
			return msgPhoneRequired
		}
		return msgPhoneLength
	case FieldEmail:
		return msgEmailInvalid
	case FieldConsent:
		return msgConsentRequired
	default:
		return fe.Error()
	}
}
