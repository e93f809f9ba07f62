package model

// User is an author identity referenced by username. Users are seeded
// externally and read-only over the API.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
