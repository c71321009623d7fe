package types

// SuccessEnvelope is the base shape of every 2xx payload. Controllers embed it
// or extend it with their own fields (order, orders, count, ...).
type SuccessEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// DebugErrorEnvelope carries the code and details alongside the message in
// dev environments.
type DebugErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}
