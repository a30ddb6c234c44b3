package checkout

import "errors"

// ErrTransactionNotFound is returned when no transaction has the given ID.
var ErrTransactionNotFound = errors.New("transaction not found")

// Log is the storage interface for the session's transaction history.
type Log interface {
	Prepend(tx *Transaction)
	Get(id string) (*Transaction, error)
	All() []*Transaction
}

// LocalLog keeps transactions in memory for the session's lifetime,
// most recent first.
type LocalLog struct {
	transactions []*Transaction
}

// NewLocalLog instantiates an empty LocalLog.
func NewLocalLog() *LocalLog {
	return &LocalLog{}
}

// Prepend puts the transaction at the front of the history.
func (l *LocalLog) Prepend(tx *Transaction) {
	l.transactions = append([]*Transaction{tx}, l.transactions...)
}

// Get retrieves a transaction by ID. Returns ErrTransactionNotFound if
// no transaction matches.
func (l *LocalLog) Get(id string) (*Transaction, error) {
	for _, tx := range l.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, ErrTransactionNotFound
}

// All returns the history, most recent first.
func (l *LocalLog) All() []*Transaction {
	out := make([]*Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}
