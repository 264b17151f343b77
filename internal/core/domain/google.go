package domain

// GoogleUserInfo holds the subset of the Google userinfo payload the app
// cares about when signing in staff via Google.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
