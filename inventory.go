package foldz

import "context"

// TransactionKind distinguishes inbound from outbound stock movements.
type TransactionKind string

// Stock movement kinds.
const (
	TransactionIn  TransactionKind = "in"
	TransactionOut TransactionKind = "out"
)

// Transaction is one stock movement for an item.
type Transaction struct {
	Item     string
	Kind     TransactionKind
	Quantity int
}

// TrackInventory folds a transaction log into current stock levels per
// item. Outbound movements that would drive a level below zero clamp it to
// zero; stock is never reported negative. Transactions with an unknown
// kind contribute nothing beyond ensuring the item has an entry.
//
// Built on Fold with a map state: each transaction is combined into the
// running level table in log order.
func TrackInventory(ctx context.Context, transactions []Transaction) map[string]int {
	stock := NewFold("inventory.stock", map[string]int{},
		func(levels map[string]int, txn Transaction) map[string]int {
			if _, ok := levels[txn.Item]; !ok {
				levels[txn.Item] = 0
			}

			switch txn.Kind {
			case TransactionIn:
				levels[txn.Item] += txn.Quantity
			case TransactionOut:
				levels[txn.Item] -= txn.Quantity
				if levels[txn.Item] < 0 {
					levels[txn.Item] = 0
				}
			}
			return levels
		})

	for _, txn := range transactions {
		stock.Add(ctx, txn)
	}
	return stock.Result()
}
