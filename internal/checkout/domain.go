package checkout

import (
	"time"

	"github.com/shopspring/decimal"
)

// State tracks the processor through a payment.
type State int

const (
	StateIdle State = iota
	StateProcessing
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateProcessing:
		return "processing"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// TransactionLine is the immutable copy of a cart line taken at
// checkout time.
type TransactionLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Transaction is the finalized record of a sale. It is never mutated
// after creation.
type Transaction struct {
	ID            string            `json:"id"`
	Lines         []TransactionLine `json:"lines"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	VAT           decimal.Decimal   `json:"vat"`
	Total         decimal.Decimal   `json:"total"`
	PaymentMethod string            `json:"payment_method"`
	Timestamp     time.Time         `json:"timestamp"`
	Cashier       string            `json:"cashier"`
}
