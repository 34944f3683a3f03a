package dto

// ContactRequest is the body of both create and update. Update is a
// full replace, so the same shape serves both.
type ContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
