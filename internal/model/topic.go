// Package model defines the data structures used throughout the application.
package model

// Topic is a named category tag for articles. Topics are seeded
// externally and read-only over the API.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
