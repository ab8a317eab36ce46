// Package domain holds DTOs for the readme proxy
package domain

// ReadmeInput names the repository whose readme to fetch
type ReadmeInput struct {
	Owner string `query:"owner" validate:"required,max=100" example:"torvalds"`
	Repo  string `query:"repo" validate:"required,max=100" example:"linux"`
}

// ReadmeOutput carries the readme in raw, preview and rendered form.
// A repository without a readme still produces a 200 with HasReadme false
type ReadmeOutput struct {
	Owner     string `json:"owner" example:"torvalds"`
	Repo      string `json:"repo" example:"linux"`
	Name      string `json:"name,omitempty" example:"README.md"`
	Content   string `json:"content"`
	Preview   string `json:"preview"`
	HTML      string `json:"html,omitempty"`
	Encoding  string `json:"encoding,omitempty" example:"base64"`
	Size      int    `json:"size" example:"41000"`
	HasReadme bool   `json:"has_readme" example:"true"`
}
