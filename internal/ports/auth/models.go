package auth

// Claims representa la información extraída del token de staff.
type Claims struct {
	UserID   string
	Email    string
	ClinicID string
}
