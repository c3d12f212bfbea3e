package impl

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "cellcontrol/internal/delivery/context"
	"cellcontrol/internal/domain/entity"
	domainerrors "cellcontrol/internal/domain/errors"
	"cellcontrol/internal/domain/repository"
	"cellcontrol/internal/domain/validation"
	"cellcontrol/internal/errors"
	"cellcontrol/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// maxImportErrors caps the row errors echoed back to the client.
const maxImportErrors = 100

var errRowSkipped = errors.New("row skipped")

// Column aliases, Portuguese first as produced by the store spreadsheets.
var (
	nameColumns     = []string{"nome", "name"}
	modelColumns    = []string{"modelo", "model", "model_name", "modelname"}
	colorColumns    = []string{"cor", "color"}
	storageColumns  = []string{"memoria", "memória", "storage", "armazenamento"}
	batteryColumns  = []string{"bateria", "battery", "battery_percent", "batterypercent"}
	imeiColumns     = []string{"imei"}
	priceColumns    = []string{"preco", "preço", "price", "valor"}
	cpfColumns      = []string{"cpf"}
	whatsappColumns = []string{"whatsapp", "celular"}
	emailColumns    = []string{"email", "e-mail"}
	phoneColumns    = []string{"telefone", "phone"}
	addressColumns  = []string{"endereco", "endereço", "address"}
)

// importRow is one record keyed by lower-cased column name.
type importRow map[string]string

func (r importRow) get(aliases []string) string {
	for _, alias := range aliases {
		if v, ok := r[alias]; ok {
			return strings.TrimSpace(v)
		}
	}

	return ""
}

func (r importRow) optional(aliases []string) *string {
	v := r.get(aliases)
	if v == "" {
		return nil
	}

	return &v
}

func (r importRow) has(aliases []string) bool {
	for _, alias := range aliases {
		if _, ok := r[alias]; ok {
			return true
		}
	}

	return false
}

// importService loads models, products and customers from CSV or JSON files.
// Every row runs in its own transaction so a bad row never aborts the file.
type importService struct {
	txManager  repository.TransactionManager
	tenantRepo repository.TenantRepository
	logger     *slog.Logger
}

// ImportServiceParams holds dependencies for ImportService, injected by Fx.
type ImportServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	TenantRepo repository.TenantRepository
	Logger     *slog.Logger
}

// NewImportService is the constructor for importService.
func NewImportService(params ImportServiceParams) usecase.ImportUsecase {
	return &importService{
		txManager:  params.TxManager,
		tenantRepo: params.TenantRepo,
		logger:     params.Logger,
	}
}

func (srv *importService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *importService) Import(ctx context.Context, input *usecase.ImportInput) (*usecase.ImportResult, error) {
	if _, err := srv.tenantRepo.FindByID(ctx, input.TenantID); err != nil {
		return nil, mapRepositoryError(err, "failed to find import tenant")
	}

	data, err := io.ReadAll(input.File)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read import file")
	}

	rows, err := parseImportFile(data, input.Format)
	if err != nil {
		return nil, err
	}

	kind := input.Kind
	if kind == "" || kind == usecase.ImportAuto {
		if kind, err = detectImportKind(rows); err != nil {
			return nil, err
		}
	}

	var importRowFn func(context.Context, repository.RepositoryFactory, uuid.UUID, importRow, *usecase.ImportDetails) error
	switch kind {
	case usecase.ImportModels:
		importRowFn = importModelRow
	case usecase.ImportProducts:
		importRowFn = importProductRow
	case usecase.ImportCustomers:
		importRowFn = importCustomerRow
	default:
		return nil, domainerrors.ErrValidationFailed.WithMessage("unknown data type " + string(kind))
	}

	result := &usecase.ImportResult{Kind: kind, TotalRecords: len(rows), Errors: make([]string, 0)}
	for i, row := range rows {
		details := usecase.ImportDetails{}
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return importRowFn(ctx, repoFactory, input.TenantID, row, &details)
		})

		switch {
		case errors.Is(err, errRowSkipped):
			result.Details.SkippedCount++
		case err != nil:
			srv.appendRowError(ctx, result, i+1, err)
		default:
			result.Imported++
			result.Details.Models += details.Models
			result.Details.Products += details.Products
			result.Details.Customers += details.Customers
		}
	}

	if dropped := result.TotalRecords - result.Imported - result.Details.SkippedCount - len(result.Errors); dropped > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("... and %d more errors", dropped))
	}
	result.Success = result.TotalRecords > 0 && result.Imported+result.Details.SkippedCount == result.TotalRecords

	srv.log(ctx).Info("Import finished",
		slog.Any("tenant_id", input.TenantID),
		slog.String("kind", string(kind)),
		slog.Int("total", result.TotalRecords),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Details.SkippedCount),
	)

	return result, nil
}

func (srv *importService) appendRowError(ctx context.Context, result *usecase.ImportResult, line int, err error) {
	if len(result.Errors) >= maxImportErrors {
		return
	}

	var appErr domainerrors.AppError
	message := "internal error"
	if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
		message = appErr.Message()
		if appErr.Details() != "" {
			message += ": " + appErr.Details()
		}
	} else {
		srv.log(ctx).Error("Import row failed", slog.Int("row", line), slog.Any("error", err))
	}

	result.Errors = append(result.Errors, fmt.Sprintf("row %d: %s", line, message))
}

// importModelRow skips names that already exist in the catalog.
func importModelRow(ctx context.Context, repoFactory repository.RepositoryFactory, tenantID uuid.UUID, row importRow, details *usecase.ImportDetails) error {
	name := row.get(nameColumns)
	if name == "" {
		name = row.get(modelColumns)
	}
	name, err := validation.RequireText("name", name)
	if err != nil {
		return err
	}

	modelRepo := repoFactory.NewDeviceModelRepository()
	if _, err := modelRepo.FindByName(ctx, tenantID, name); err == nil {
		return errRowSkipped
	} else if !errors.Is(err, repository.ErrModelNotFound) {
		return errors.Wrap(err, "failed to look up model")
	}

	if err := modelRepo.Create(ctx, tenantID, &entity.DeviceModel{Name: name}); err != nil {
		return mapRepositoryError(err, "failed to create model")
	}
	details.Models++

	return nil
}

// importProductRow references the model by name and creates it on demand.
func importProductRow(ctx context.Context, repoFactory repository.RepositoryFactory, tenantID uuid.UUID, row importRow, details *usecase.ImportDetails) error {
	modelName, err := validation.RequireText("model", row.get(modelColumns))
	if err != nil {
		return err
	}
	battery, err := parseBattery(row.get(batteryColumns))
	if err != nil {
		return err
	}

	product, err := newProduct(&usecase.CreateProductInput{
		Color:          row.get(colorColumns),
		Storage:        row.get(storageColumns),
		BatteryPercent: battery,
		IMEI:           row.optional(imeiColumns),
		Price:          row.get(priceColumns),
	})
	if err != nil {
		return err
	}

	modelRepo := repoFactory.NewDeviceModelRepository()
	model, err := modelRepo.FindByName(ctx, tenantID, modelName)
	if errors.Is(err, repository.ErrModelNotFound) {
		model = &entity.DeviceModel{Name: modelName}
		if err := modelRepo.Create(ctx, tenantID, model); err != nil {
			return mapRepositoryError(err, "failed to create model")
		}
		details.Models++
	} else if err != nil {
		return errors.Wrap(err, "failed to look up model")
	}

	product.ModelID = model.ID
	if err := repoFactory.NewProductRepository().Create(ctx, tenantID, product); err != nil {
		return mapRepositoryError(err, "failed to create product")
	}
	details.Products++

	return nil
}

// importCustomerRow skips customers whose CPF is already registered.
func importCustomerRow(ctx context.Context, repoFactory repository.RepositoryFactory, tenantID uuid.UUID, row importRow, details *usecase.ImportDetails) error {
	customer, err := newCustomer(&usecase.CreateCustomerInput{
		Name:     row.get(nameColumns),
		CPF:      row.get(cpfColumns),
		WhatsApp: row.get(whatsappColumns),
		Email:    row.optional(emailColumns),
		Phone:    row.optional(phoneColumns),
		Address:  row.optional(addressColumns),
	})
	if err != nil {
		return err
	}

	customerRepo := repoFactory.NewCustomerRepository()
	existing, err := customerRepo.List(ctx, tenantID, repository.CustomerFilter{Query: customer.CPF})
	if err != nil {
		return errors.Wrap(err, "failed to look up customer")
	}
	for _, c := range existing {
		if c.CPF == customer.CPF {
			return errRowSkipped
		}
	}

	if err := customerRepo.Create(ctx, tenantID, customer); err != nil {
		return mapRepositoryError(err, "failed to create customer")
	}
	details.Customers++

	return nil
}

// parseBattery accepts "95", "95%" or blank.
func parseBattery(raw string) (*int, error) {
	raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if raw == "" {
		return nil, nil
	}

	percent, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("battery must be a whole number")
	}
	if err := validation.ValidateBattery(&percent); err != nil {
		return nil, err
	}

	return &percent, nil
}

// detectImportKind looks at the columns of the first row.
func detectImportKind(rows []importRow) (usecase.ImportKind, error) {
	if len(rows) == 0 {
		return "", domainerrors.ErrValidationFailed.WithMessage("the file has no records")
	}

	first := rows[0]
	switch {
	case first.has(modelColumns) && (first.has(priceColumns) || first.has(colorColumns)):
		return usecase.ImportProducts, nil
	case first.has(cpfColumns):
		return usecase.ImportCustomers, nil
	case first.has(nameColumns) || first.has(modelColumns):
		return usecase.ImportModels, nil
	default:
		return "", domainerrors.ErrValidationFailed.WithMessage("could not detect the data type from the columns")
	}
}

// parseImportFile decodes a JSON array of objects or a CSV file with a header row.
func parseImportFile(data []byte, format usecase.ImportFormat) ([]importRow, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if format == "" {
		format = usecase.FormatCSV
		if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
			format = usecase.FormatJSON
		}
	}

	switch format {
	case usecase.FormatJSON:
		return parseJSONRows(data)
	case usecase.FormatCSV:
		return parseCSVRows(data)
	default:
		return nil, domainerrors.ErrValidationFailed.WithMessage("unsupported file format")
	}
}

func parseJSONRows(data []byte) ([]importRow, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var records []map[string]any
	if err := decoder.Decode(&records); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("invalid JSON: expected an array of objects")
	}

	rows := make([]importRow, 0, len(records))
	for _, record := range records {
		row := make(importRow, len(record))
		for key, value := range record {
			row[normalizeColumn(key)] = jsonString(value)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func jsonString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func parseCSVRows(data []byte) ([]importRow, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comma = csvDelimiter(data)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("invalid CSV file").WithDetails(err.Error())
	}
	if len(records) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithMessage("the file has no header row")
	}

	header := make([]string, len(records[0]))
	for i, column := range records[0] {
		header[i] = normalizeColumn(column)
	}

	rows := make([]importRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if isBlankRecord(record) {
			continue
		}
		row := make(importRow, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// csvDelimiter picks ';' when the header uses it, as spreadsheets in pt-BR locales export.
func csvDelimiter(data []byte) rune {
	headerLine, _, _ := bytes.Cut(data, []byte("\n"))
	if bytes.Count(headerLine, []byte(";")) > bytes.Count(headerLine, []byte(",")) {
		return ';'
	}

	return ','
}

func isBlankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}

	return true
}

func normalizeColumn(column string) string {
	return strings.ToLower(strings.TrimSpace(column))
}
