package expense_tracker

// Messages returned to API clients. Storage or driver details never end up here.
const (
	MsgUserCreated     = "User created successfully!"
	MsgLoginOK         = "Login successful"
	MsgUserExists      = "User already exists!"
	MsgUserNotFound    = "User not found!"
	MsgInvalidCreds    = "Invalid email or password"
	MsgInternal        = "Something went wrong!"
	MsgPasswordTooLong = "password is too long"
)

// MessageResponse is the body of a successful register/login call.
type MessageResponse struct {
	Message string `json:"message" example:"User created successfully!"`
}

// ErrorResponse is the body of every failed call.
type ErrorResponse struct {
	Error string `json:"error" example:"User already exists!"`
}

// HealthResponse reports whether the credential store is reachable.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
