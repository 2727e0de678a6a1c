package models

// RegisterRequest is the body of POST /api/user/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/user/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is returned on successful registration. The issued
// bearer token travels in the Authorization response header, not the body.
type RegisterResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse carries the signed session token issued on login.
type LoginResponse struct {
	Token string `json:"token"`
}

// UserResponse is the single-record read envelope: {"data":{"user":{...}}}.
type UserResponse struct {
	Data UserData `json:"data"`
}

// UserData is the inner object of [UserResponse].
type UserData struct {
	User User `json:"user"`
}

// UsersResponse is the list envelope: {"data":{"users":[...]}}.
type UsersResponse struct {
	Data UsersData `json:"data"`
}

// UsersData is the inner object of [UsersResponse].
type UsersData struct {
	Users []User `json:"users"`
}

// AffectedResponse reports how many rows an update or delete touched.
type AffectedResponse struct {
	Affected int64 `json:"affected"`
}

// ErrorResponse is the uniform error body. Message carries only the
// kind-level description, never internal error text.
type ErrorResponse struct {
	Message string `json:"message"`
}
