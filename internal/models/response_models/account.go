package response_models

// AccountSummary is the admin listing projection. Password hashes never leave
// the service layer.
type AccountSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}
