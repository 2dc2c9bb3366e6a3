package domain

// DefaultSharedSecret demo secret shared by every professional.
// Placeholder only; there are no per-user credentials.
const DefaultSharedSecret = "123456"
