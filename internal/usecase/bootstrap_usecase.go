package usecase

import "context"

// BootstrapUsecase seeds the first accounts on an empty database.
type BootstrapUsecase interface {
	Seed(ctx context.Context) error
}
