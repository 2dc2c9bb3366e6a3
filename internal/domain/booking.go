package domain

import "github.com/m04kA/SMC-AgendaService/pkg/types"

// BookingDraft is normalized client contact data for a tentative booking.
// It only lives for the duration of one confirmation attempt.
type BookingDraft struct {
	FullName string
	Phone    string // digits only
	Email    string // empty when not provided
	Consent  bool
}

// HasEmail returns true if the client left an e-mail
func (d *BookingDraft) HasEmail() bool {
	return d.Email != ""
}

// BookingConfirmation is the validated selection handed to the external confirmation step
type BookingConfirmation struct {
	ProfessionalID      string
	ProfessionalName    string
	ProfessionalAddress string
	Date                types.DateKey
	StartTime           types.TimeString
	EndTime             types.TimeString
	Duration            Duration
	Client              BookingDraft
}
