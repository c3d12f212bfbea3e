package handler

import (
	"bytes"
	"encoding/json"
	"time"

	"cellcontrol/internal/domain/entity"
	"cellcontrol/internal/domain/validation"
	"cellcontrol/internal/errors"
	"cellcontrol/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Money renders a decimal amount as a JSON number with two fraction digits.
type Money decimal.Decimal

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(m).StringFixed(2)), nil
}

// PriceInput accepts a price as a JSON number (4500.5) or as text ("4.500,50").
// Parsing happens in the usecase so both forms share one set of rules.
type PriceInput string

func (p *PriceInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""

		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "price")
		}
		*p = PriceInput(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "price must be a number or a string")
	}
	*p = PriceInput(n.String())

	return nil
}

func (p *PriceInput) ptr() *string {
	if p == nil {
		return nil
	}
	s := string(*p)

	return &s
}

type TenantResponse struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	LogoURL   *string   `json:"logoUrl"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newTenantResponse(t *entity.Tenant) *TenantResponse {
	if t == nil {
		return nil
	}

	return &TenantResponse{
		ID:        t.ID,
		Slug:      t.Slug,
		Name:      t.Name,
		LogoURL:   t.LogoURL,
		Active:    t.Active,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Role       string     `json:"role"`
	TenantID   *uuid.UUID `json:"tenantId"`
	TenantName *string    `json:"tenantName,omitempty"`
	TenantSlug *string    `json:"tenantSlug,omitempty"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// newUserResponse never carries the password hash.
func newUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role.String(),
		TenantID:  u.TenantID,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func newUserWithTenantResponse(u *usecase.UserWithTenant) *UserResponse {
	res := newUserResponse(u.User)
	res.TenantName = u.TenantName
	res.TenantSlug = u.TenantSlug

	return res
}

type ModelResponse struct {
	ID             uuid.UUID `json:"id"`
	TenantID       uuid.UUID `json:"tenantId"`
	Name           string    `json:"name"`
	AvailableCount *int64    `json:"availableCount,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func newModelResponse(m *entity.DeviceModel) *ModelResponse {
	return &ModelResponse{
		ID:        m.ID,
		TenantID:  m.TenantID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func newModelStockResponse(m *entity.DeviceModelStock) *ModelResponse {
	res := newModelResponse(&m.DeviceModel)
	count := m.AvailableCount
	res.AvailableCount = &count

	return res
}

type ProductResponse struct {
	ID             uuid.UUID  `json:"id"`
	TenantID       uuid.UUID  `json:"tenantId"`
	ModelID        uuid.UUID  `json:"modelId"`
	ModelName      string     `json:"modelName"`
	Color          string     `json:"color"`
	Storage        string     `json:"storage"`
	BatteryPercent *int       `json:"batteryPercent"`
	IMEI           *string    `json:"imei"`
	Price          Money      `json:"price"`
	Sold           bool       `json:"sold"`
	SaleID         *uuid.UUID `json:"saleId"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func newProductResponse(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:             p.ID,
		TenantID:       p.TenantID,
		ModelID:        p.ModelID,
		ModelName:      p.ModelName,
		Color:          p.Color,
		Storage:        p.Storage,
		BatteryPercent: p.BatteryPercent,
		IMEI:           p.IMEI,
		Price:          Money(p.Price),
		Sold:           p.Sold,
		SaleID:         p.SaleID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

type CustomerResponse struct {
	ID                uuid.UUID `json:"id"`
	TenantID          uuid.UUID `json:"tenantId"`
	Name              string    `json:"name"`
	CPF               string    `json:"cpf"`
	CPFFormatted      string    `json:"cpfFormatted"`
	WhatsApp          string    `json:"whatsapp"`
	WhatsAppFormatted string    `json:"whatsappFormatted"`
	Email             *string   `json:"email"`
	Phone             *string   `json:"phone"`
	Address           *string   `json:"address"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func newCustomerResponse(c *entity.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:                c.ID,
		TenantID:          c.TenantID,
		Name:              c.Name,
		CPF:               c.CPF,
		CPFFormatted:      validation.FormatCPF(c.CPF),
		WhatsApp:          c.WhatsApp,
		WhatsAppFormatted: validation.FormatPhone(c.WhatsApp),
		Email:             c.Email,
		Phone:             c.Phone,
		Address:           c.Address,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

type SaleItemResponse struct {
	ProductID uuid.UUID `json:"productId"`
	ModelID   uuid.UUID `json:"modelId"`
	ModelName string    `json:"modelName"`
	Color     string    `json:"color"`
	Storage   string    `json:"storage"`
	Price     Money     `json:"price"`
}

type SaleResponse struct {
	ID            uuid.UUID          `json:"id"`
	TenantID      uuid.UUID          `json:"tenantId"`
	CustomerID    uuid.UUID          `json:"customerId"`
	CustomerName  string             `json:"customerName"`
	Items         []SaleItemResponse `json:"items"`
	PaymentMethod string             `json:"paymentMethod"`
	TotalValue    Money              `json:"totalValue"`
	Note          *string            `json:"note"`
	SoldAt        time.Time          `json:"soldAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

func newSaleResponse(s *entity.Sale) *SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, SaleItemResponse{
			ProductID: item.ProductID,
			ModelID:   item.ModelID,
			ModelName: item.ModelName,
			Color:     item.Color,
			Storage:   item.Storage,
			Price:     Money(item.Price),
		})
	}

	return &SaleResponse{
		ID:            s.ID,
		TenantID:      s.TenantID,
		CustomerID:    s.CustomerID,
		CustomerName:  s.CustomerName,
		Items:         items,
		PaymentMethod: s.PaymentMethod.String(),
		TotalValue:    Money(s.TotalValue),
		Note:          s.Note,
		SoldAt:        s.SoldAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

type TenantStatsResponse struct {
	TotalModels     int64 `json:"totalModels"`
	TotalProducts   int64 `json:"totalProducts"`
	TotalCustomers  int64 `json:"totalCustomers"`
	TotalSales      int64 `json:"totalSales"`
	TotalSalesValue Money `json:"totalSalesValue"`
}

type TenantWithStatsResponse struct {
	*TenantResponse
	Stats *TenantStatsResponse `json:"stats"`
}

func newTenantWithStatsResponse(t *usecase.TenantWithStats) *TenantWithStatsResponse {
	res := &TenantWithStatsResponse{TenantResponse: newTenantResponse(t.Tenant)}
	if t.Stats != nil {
		res.Stats = &TenantStatsResponse{
			TotalModels:     t.Stats.TotalModels,
			TotalProducts:   t.Stats.TotalProducts,
			TotalCustomers:  t.Stats.TotalCustomers,
			TotalSales:      t.Stats.TotalSales,
			TotalSalesValue: Money(t.Stats.TotalSalesValue),
		}
	}

	return res
}

// mapSlice converts each element with fn. It always returns a non-nil slice
// so empty lists render as [] instead of null.
func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}
