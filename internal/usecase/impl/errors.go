// Package impl contains the implementation of the application's business logic.
package impl

import (
	domainerrors "cellcontrol/internal/domain/errors"
	"cellcontrol/internal/domain/repository"
	"cellcontrol/internal/errors"
)

// repositoryErrors maps persistence sentinels to the errors rendered to clients.
var repositoryErrors = []struct {
	sentinel error
	appErr   *domainerrors.BaseError
}{
	{repository.ErrTenantNotFound, domainerrors.ErrNotFound.WithMessage("store not found")},
	{repository.ErrUserNotFound, domainerrors.ErrNotFound.WithMessage("user not found")},
	{repository.ErrModelNotFound, domainerrors.ErrNotFound.WithMessage("model not found")},
	{repository.ErrProductNotFound, domainerrors.ErrNotFound.WithMessage("product not found")},
	{repository.ErrCustomerNotFound, domainerrors.ErrNotFound.WithMessage("customer not found")},
	{repository.ErrSaleNotFound, domainerrors.ErrNotFound.WithMessage("sale not found")},
	{repository.ErrModelInUse, domainerrors.ErrModelInUse},
	{repository.ErrCustomerInUse, domainerrors.ErrCustomerInUse},
	{repository.ErrProductUnavailable, domainerrors.ErrProductUnavailable},
	{repository.ErrDuplicateSlug, domainerrors.ErrSlugTaken},
	{repository.ErrDuplicateEmail, domainerrors.ErrEmailTaken},
}

// mapRepositoryError converts a repository sentinel into its AppError.
// Anything else is wrapped with msg and surfaces as an internal error.
func mapRepositoryError(err error, msg string) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if _, isDB := appErr.(*domainerrors.DatabaseExecuteError); !isDB {
			return err
		}
	}

	for _, m := range repositoryErrors {
		if errors.Is(err, m.sentinel) {
			return m.appErr
		}
	}

	return errors.Wrap(err, msg)
}

// invalidReference reports a missing related record supplied by the client.
func invalidReference(what string) error {
	return domainerrors.ErrInvalidReference.WithMessage(what + " does not exist in this store")
}
