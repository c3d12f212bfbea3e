package handler

import (
	"net/http"
	"strconv"

	"cellcontrol/internal/delivery/api/middleware"
	"cellcontrol/internal/delivery/api/response"
	"cellcontrol/internal/domain/entity"
	domainerrors "cellcontrol/internal/domain/errors"
	"cellcontrol/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("malformed request body")
	}

	return c.Validate(req)
}

// pathID parses a uuid path parameter. A malformed id cannot exist, so it is not found.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrNotFound
	}

	return id, nil
}

// pageQuery reads the optional limit/offset query parameters.
func pageQuery(c echo.Context) (repository.Page, error) {
	var page repository.Page
	for name, target := range map[string]*int{"limit": &page.Limit, "offset": &page.Offset} {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return page, domainerrors.ErrValidationFailed.WithMessage(name + " must be a non-negative integer")
		}
		*target = n
	}
	if page.Limit > repository.MaxPageSize {
		page.Limit = repository.MaxPageSize
	}

	return page, nil
}

// storeContext returns the store resolved by the store middleware.
func storeContext(c echo.Context) (*entity.Tenant, error) {
	tenant, ok := middleware.GetTenant(c)
	if !ok {
		return nil, domainerrors.ErrForbidden
	}

	return tenant, nil
}

func sessionContext(c echo.Context) (*entity.Session, error) {
	session, ok := middleware.GetSession(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return session, nil
}

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
