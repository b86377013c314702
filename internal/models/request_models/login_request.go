package request_models

// LoginRequest carries no binding rules: malformed or empty credentials must
// fail exactly like wrong ones.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
