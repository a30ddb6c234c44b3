package checkout

import (
	"fmt"
	"strings"
)

// Store header printed on every receipt.
const (
	storeName   = "Fashion Store"
	storeStreet = "123 Fashion Street"
	storeCity   = "City, State 12345"
	storePhone  = "Tel: (555) 123-4567"
)

const receiptWidth = 40

// Receipt renders the printable till receipt for a transaction.
// Amounts are shown with two decimals here and nowhere else; the
// transaction keeps full precision.
func Receipt(tx *Transaction) string {
	var b strings.Builder

	center := func(s string) {
		pad := (receiptWidth - len(s)) / 2
		if pad < 0 {
			pad = 0
		}
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(s)
		b.WriteByte('\n')
	}
	row := func(label, value string) {
		gap := receiptWidth - len(label) - len(value)
		if gap < 1 {
			gap = 1
		}
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", gap))
		b.WriteString(value)
		b.WriteByte('\n')
	}
	divider := strings.Repeat("-", receiptWidth) + "\n"

	center(storeName)
	center(storeStreet)
	center(storeCity)
	center(storePhone)
	b.WriteString(divider)

	row("Transaction ID:", tx.ID)
	row("Date:", tx.Timestamp.Format("2006-01-02 15:04:05"))
	row("Cashier:", tx.Cashier)
	row("Payment:", tx.PaymentMethod)
	b.WriteString(divider)

	for _, line := range tx.Lines {
		row(line.Name, "$"+line.LineTotal.StringFixed(2))
		fmt.Fprintf(&b, "  %d x $%s (%s, %s)\n", line.Quantity, line.UnitPrice.StringFixed(2), line.Size, line.Color)
	}
	b.WriteString(divider)

	row("Subtotal:", "$"+tx.Subtotal.StringFixed(2))
	row("VAT (5%):", "$"+tx.VAT.StringFixed(2))
	row("Total:", "$"+tx.Total.StringFixed(2))
	b.WriteString(divider)

	center("Thank you for shopping with us!")
	center("Return policy: 30 days with receipt")
	return b.String()
}
