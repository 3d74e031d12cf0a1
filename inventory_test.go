package foldz

import (
	"context"
	"maps"
	"testing"
)

func TestTrackInventory(t *testing.T) {
	transactions := []Transaction{
		{Item: "Apple", Kind: TransactionIn, Quantity: 100},
		{Item: "Apple", Kind: TransactionOut, Quantity: 30},
		{Item: "Banana", Kind: TransactionIn, Quantity: 50},
	}

	levels := TrackInventory(context.Background(), transactions)

	want := map[string]int{"Apple": 70, "Banana": 50}
	if !maps.Equal(levels, want) {
		t.Errorf("Expected %v, got %v", want, levels)
	}
}

func TestTrackInventory_ClampsAtZero(t *testing.T) {
	transactions := []Transaction{
		{Item: "Apple", Kind: TransactionIn, Quantity: 10},
		{Item: "Apple", Kind: TransactionOut, Quantity: 25},
		{Item: "Apple", Kind: TransactionIn, Quantity: 5},
	}

	levels := TrackInventory(context.Background(), transactions)

	// The oversized outbound clamps to 0; stock never goes negative.
	if levels["Apple"] != 5 {
		t.Errorf("Expected 5, got %d", levels["Apple"])
	}
}

func TestTrackInventory_OutboundOnly(t *testing.T) {
	transactions := []Transaction{
		{Item: "Ghost", Kind: TransactionOut, Quantity: 3},
	}

	levels := TrackInventory(context.Background(), transactions)

	if levels["Ghost"] != 0 {
		t.Errorf("Expected 0, got %d", levels["Ghost"])
	}
}

func TestTrackInventory_UnknownKind(t *testing.T) {
	transactions := []Transaction{
		{Item: "Apple", Kind: "audit", Quantity: 5},
	}

	levels := TrackInventory(context.Background(), transactions)

	// Unknown kinds still register the item, at level 0.
	if count, ok := levels["Apple"]; !ok || count != 0 {
		t.Errorf("Expected Apple at 0, got %v", levels)
	}
}

func TestTrackInventory_Empty(t *testing.T) {
	levels := TrackInventory(context.Background(), nil)

	if len(levels) != 0 {
		t.Errorf("Expected empty levels, got %v", levels)
	}
}
