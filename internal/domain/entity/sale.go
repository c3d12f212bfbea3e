package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how a sale was paid.
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "cash"
	PaymentPix        PaymentMethod = "pix"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
	PaymentTransfer   PaymentMethod = "transfer"
)

// PaymentMethods lists every accepted payment method.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentPix, PaymentCreditCard, PaymentDebitCard, PaymentTransfer}

func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentPix, PaymentCreditCard, PaymentDebitCard, PaymentTransfer:
		return true
	default:
		return false
	}
}

// SaleItem is the immutable snapshot of a product taken when it was sold.
type SaleItem struct {
	ProductID uuid.UUID
	ModelID   uuid.UUID
	ModelName string
	Color     string
	Storage   string
	Price     decimal.Decimal
}

// Sale is a completed point-of-sale transaction. Items and TotalValue never
// change after creation; only PaymentMethod and Note are editable.
type Sale struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	CustomerID    uuid.UUID
	CustomerName  string // filled on reads
	Items         []SaleItem
	PaymentMethod PaymentMethod
	TotalValue    decimal.Decimal
	Note          *string
	SoldAt        time.Time
	UpdatedAt     time.Time
}

// ProductIDs returns the ids of the sold products in snapshot order.
func (s *Sale) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.Items))
	for _, item := range s.Items {
		ids = append(ids, item.ProductID)
	}

	return ids
}

// NewSaleItem snapshots a product together with its model name.
func NewSaleItem(p *Product, modelName string) SaleItem {
	return SaleItem{
		ProductID: p.ID,
		ModelID:   p.ModelID,
		ModelName: modelName,
		Color:     p.Color,
		Storage:   p.Storage,
		Price:     p.Price,
	}
}

// SumItems totals item prices in the given order.
func SumItems(items []SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price)
	}

	return total
}
