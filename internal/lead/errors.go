package lead

import "errors"

var (
	ErrLeadNotFound   = errors.New("lead not found")
	ErrDuplicatePhone = errors.New("lead with this phone already exists")
	ErrInvalidPhone   = errors.New("phone number is required")
	ErrOptedOut       = errors.New("lead has opted out")
)
