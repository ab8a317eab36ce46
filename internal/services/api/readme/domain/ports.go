package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Readme(ctx context.Context, in ReadmeInput) (ReadmeOutput, error)
}
