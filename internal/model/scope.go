package model

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the identity a request acts on behalf of. For inbound SMS
// the scope is derived from the sender's phone number; webhook-originated
// work runs under a system scope.
type Scope struct {
	UserID string
	Phone  string
}
