package checkout

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"fashion_pos/internal/cart"
	"fashion_pos/internal/catalog"
	"fashion_pos/internal/pricing"
)

// ErrEmptyCart is returned when checkout is attempted with no lines in
// the cart. No transaction is created and no stock is touched.
var ErrEmptyCart = errors.New("cart is empty")

// ErrCheckoutInProgress is returned when a checkout is started while
// another one is still processing.
var ErrCheckoutInProgress = errors.New("checkout already in progress")

// UnknownCashier is recorded when no actor is signed in at checkout
// time.
const UnknownCashier = "Unknown"

// DefaultDelay is the simulated payment latency.
const DefaultDelay = 2 * time.Second

// Processor turns the cart into a finalized Transaction: simulate the
// payment, decrement stock, record the sale and clear the cart. One
// checkout may be in flight at a time. Like the rest of the register it
// assumes a single terminal and is not safe for concurrent use.
type Processor struct {
	catalog *catalog.Service
	cart    *cart.Cart
	log     Log
	logger  *zap.Logger
	delay   time.Duration
	state   State
}

// NewProcessor creates a Processor with the given simulated payment
// latency.
func NewProcessor(catalogService *catalog.Service, c *cart.Cart, log Log, delay time.Duration, logger *zap.Logger) *Processor {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Processor{
		catalog: catalogService,
		cart:    c,
		log:     log,
		logger:  logger,
		delay:   delay,
		state:   StateIdle,
	}
}

// State reports where the processor is in the payment cycle.
func (p *Processor) State() State {
	return p.state
}

// Checkout processes the payment for the current cart and returns the
// recorded transaction. Stock is decremented per line after the
// simulated payment resolves; a decrement that would go negative is
// clamped at zero rather than failing the sale, so a stock edit racing
// the payment delay cannot abort a checkout that already started.
func (p *Processor) Checkout(paymentMethod, cashier string) (*Transaction, error) {
	if p.state == StateProcessing {
		return nil, ErrCheckoutInProgress
	}

	items := p.cart.Snapshot()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	p.state = StateProcessing
	// Simulated payment latency. There is no failure path to model;
	// payment always succeeds after the delay.
	time.Sleep(p.delay)

	lines := make([]TransactionLine, 0, len(items))
	priced := make([]pricing.Line, 0, len(items))
	for _, item := range items {
		if _, err := p.catalog.AdjustStock(item.Product.ID, -item.Quantity); err != nil {
			// Product vanished mid-checkout; the sale still goes
			// through with the snapshot taken above.
			p.logger.Warn("stock decrement skipped",
				zap.String("product_id", item.Product.ID),
				zap.Error(err),
			)
		}
		lines = append(lines, TransactionLine{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Size:      item.Product.Size,
			Color:     item.Product.Color,
			UnitPrice: item.Product.Price,
			Quantity:  item.Quantity,
			LineTotal: item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
		priced = append(priced, pricing.Line{UnitPrice: item.Product.Price, Quantity: item.Quantity})
	}

	if cashier == "" {
		cashier = UnknownCashier
	}
	totals := pricing.Calculate(priced)
	tx := &Transaction{
		ID:            fmt.Sprintf("TXN-%s", uuid.NewString()),
		Lines:         lines,
		Subtotal:      totals.Subtotal,
		VAT:           totals.VAT,
		Total:         totals.Total,
		PaymentMethod: paymentMethod,
		Timestamp:     time.Now(),
		Cashier:       cashier,
	}

	p.log.Prepend(tx)
	p.cart.Clear()
	p.state = StateCompleted

	p.logger.Info("checkout completed",
		zap.String("transaction_id", tx.ID),
		zap.String("payment_method", paymentMethod),
		zap.String("cashier", cashier),
		zap.String("total", tx.Total.String()),
	)
	return tx, nil
}
