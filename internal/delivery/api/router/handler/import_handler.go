package handler

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"cellcontrol/internal/delivery/api/response"
	deliverycontext "cellcontrol/internal/delivery/context"
	domainerrors "cellcontrol/internal/domain/errors"
	"cellcontrol/internal/errors"
	"cellcontrol/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const importFileField = "file"

// ImportHandlerParams holds dependencies for ImportHandler, injected by Fx.
type ImportHandlerParams struct {
	fx.In

	ImportUC usecase.ImportUsecase
	Logger   *slog.Logger
}

// ImportHandler accepts bulk catalog files.
type ImportHandler struct {
	importUC usecase.ImportUsecase
	logger   *slog.Logger
}

// NewImportHandler is the constructor for ImportHandler
func NewImportHandler(params ImportHandlerParams) *ImportHandler {
	return &ImportHandler{
		importUC: params.ImportUC,
		logger:   params.Logger,
	}
}

type ImportDetailsResponse struct {
	Models    int `json:"models"`
	Products  int `json:"products"`
	Customers int `json:"customers"`
	Skipped   int `json:"skipped"`
}

type ImportResponse struct {
	Success      bool                  `json:"success"`
	DataType     string                `json:"dataType"`
	TotalRecords int                   `json:"totalRecords"`
	Imported     int                   `json:"imported"`
	Errors       []string              `json:"errors"`
	Details      ImportDetailsResponse `json:"details"`
}

// Import handles POST /admin/import/:tenantId?dataType=auto|models|products|customers
func (h *ImportHandler) Import(c echo.Context) error {
	tenantID, err := pathID(c, "tenantId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	kind := usecase.ImportKind(strings.ToLower(c.QueryParam("dataType")))
	if kind == "" {
		kind = usecase.ImportAuto
	}

	header, err := c.FormFile(importFileField)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithMessage("a file must be uploaded in the \"file\" field"))
	}
	file, err := header.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded file")
	}
	defer file.Close()

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Importing file",
		slog.String("tenant_id", tenantID.String()),
		slog.String("data_type", string(kind)),
		slog.String("filename", header.Filename),
		slog.Int64("size", header.Size),
	)

	result, err := h.importUC.Import(c.Request().Context(), &usecase.ImportInput{
		TenantID: tenantID,
		Kind:     kind,
		Format:   formatFromFilename(header.Filename),
		File:     file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	errs := result.Errors
	if errs == nil {
		errs = []string{}
	}

	return response.Success(c, http.StatusOK, &ImportResponse{
		Success:      result.Success,
		DataType:     string(result.Kind),
		TotalRecords: result.TotalRecords,
		Imported:     result.Imported,
		Errors:       errs,
		Details: ImportDetailsResponse{
			Models:    result.Details.Models,
			Products:  result.Details.Products,
			Customers: result.Details.Customers,
			Skipped:   result.Details.SkippedCount,
		},
	})
}

// formatFromFilename trusts the extension when it is conclusive; otherwise the
// usecase sniffs the content.
func formatFromFilename(name string) usecase.ImportFormat {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return usecase.FormatJSON
	case ".csv", ".txt":
		return usecase.FormatCSV
	default:
		return ""
	}
}
