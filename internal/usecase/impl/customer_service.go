package impl

import (
	"context"
	"log/slog"

	deliverycontext "cellcontrol/internal/delivery/context"
	"cellcontrol/internal/domain/entity"
	"cellcontrol/internal/domain/repository"
	"cellcontrol/internal/domain/validation"
	"cellcontrol/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		logger:       params.Logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *customerService) List(ctx context.Context, tenantID uuid.UUID, filter repository.CustomerFilter) ([]*entity.Customer, error) {
	filter.Page = filter.Page.Normalize()

	customers, err := srv.customerRepo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to list customers")
	}

	return customers, nil
}

func (srv *customerService) Get(ctx context.Context, tenantID, id uuid.UUID) (*entity.Customer, error) {
	c, err := srv.customerRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find customer")
	}

	return c, nil
}

func (srv *customerService) Create(ctx context.Context, tenantID uuid.UUID, input *usecase.CreateCustomerInput) (*entity.Customer, error) {
	c, err := newCustomer(input)
	if err != nil {
		return nil, err
	}

	if err := srv.customerRepo.Create(ctx, tenantID, c); err != nil {
		return nil, mapRepositoryError(err, "failed to create customer")
	}
	srv.log(ctx).Info("Customer created", slog.Any("tenant_id", tenantID), slog.Any("customer_id", c.ID))

	return c, nil
}

// newCustomer validates a create request. CPF and WhatsApp are stored as digits.
func newCustomer(input *usecase.CreateCustomerInput) (*entity.Customer, error) {
	name, err := validation.RequireText("name", input.Name)
	if err != nil {
		return nil, err
	}
	cpf, err := validation.NormalizeCPF(input.CPF)
	if err != nil {
		return nil, err
	}
	whatsapp, err := validation.NormalizeWhatsApp(input.WhatsApp)
	if err != nil {
		return nil, err
	}

	return &entity.Customer{
		Name:     name,
		CPF:      cpf,
		WhatsApp: whatsapp,
		Email:    validation.OptionalText(input.Email),
		Phone:    validation.OptionalText(input.Phone),
		Address:  validation.OptionalText(input.Address),
	}, nil
}

func (srv *customerService) Update(ctx context.Context, tenantID, id uuid.UUID, input *usecase.UpdateCustomerInput) (*entity.Customer, error) {
	c, err := srv.customerRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find customer")
	}

	if err := applyCustomerUpdate(c, input); err != nil {
		return nil, err
	}

	if err := srv.customerRepo.Update(ctx, tenantID, c); err != nil {
		return nil, mapRepositoryError(err, "failed to update customer")
	}

	return c, nil
}

func applyCustomerUpdate(c *entity.Customer, input *usecase.UpdateCustomerInput) error {
	if input.Name != nil {
		name, err := validation.RequireText("name", *input.Name)
		if err != nil {
			return err
		}
		c.Name = name
	}
	if input.CPF != nil {
		cpf, err := validation.NormalizeCPF(*input.CPF)
		if err != nil {
			return err
		}
		c.CPF = cpf
	}
	if input.WhatsApp != nil {
		whatsapp, err := validation.NormalizeWhatsApp(*input.WhatsApp)
		if err != nil {
			return err
		}
		c.WhatsApp = whatsapp
	}
	if input.Email != nil {
		c.Email = validation.OptionalText(input.Email)
	}
	if input.Phone != nil {
		c.Phone = validation.OptionalText(input.Phone)
	}
	if input.Address != nil {
		c.Address = validation.OptionalText(input.Address)
	}

	return nil
}

// Delete refuses customers that have sales.
func (srv *customerService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if err := srv.customerRepo.Delete(ctx, tenantID, id); err != nil {
		return mapRepositoryError(err, "failed to delete customer")
	}
	srv.log(ctx).Info("Customer deleted", slog.Any("tenant_id", tenantID), slog.Any("customer_id", id))

	return nil
}
