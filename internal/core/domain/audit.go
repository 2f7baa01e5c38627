package domain

import "time"

// Audit actions recorded by the auth subsystem.
const (
	AuditLoginSucceeded  = "login_succeeded"
	AuditLoginFailed     = "login_failed"
	AuditLoginThrottled  = "login_throttled"
	AuditSignupSucceeded = "signup_succeeded"
	AuditSignupRejected  = "signup_rejected"
)

// AuthEvent is a single audit trail entry for an authentication attempt.
// Actor is the subject the caller claimed, whether or not it exists.
type AuthEvent struct {
	Actor     string
	Action    string
	Reason    string // empty on success
	Timestamp time.Time
}
