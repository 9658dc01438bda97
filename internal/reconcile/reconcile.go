// Package reconcile computes the remote mutations needed to bring a
// server-confirmed order item list in line with an admin's edited working
// copy. Local mutations and the diff are pure; issuing the resulting plan
// against the order service is the job of services.OrderEditor.
package reconcile

import (
	"fmt"

	"backoffice-service/internal/domain"
)

// Admin-facing messages for rejected local edits.
const (
	MsgMaxQuantity  = "La cantidad máxima por producto es 36"
	MsgMinQuantity  = "La cantidad mínima por producto es 1"
	MsgLastItem     = "No se puede eliminar el único item de la orden"
	MsgItemNotFound = "El item no existe en la orden"
)

// SetQuantity returns a copy of items with the matching item's quantity
// replaced. Quantities outside [1, MaxItemQuantity] are rejected before any
// network call; the input slice is never mutated and ordering is preserved.
func SetQuantity(items []domain.OrderItem, itemID uint64, qty int) ([]domain.OrderItem, error) {
	if qty > domain.MaxItemQuantity {
		return nil, &domain.ValidationError{Message: MsgMaxQuantity}
	}
	if qty < 1 {
		return nil, &domain.ValidationError{Message: MsgMinQuantity}
	}
	out := make([]domain.OrderItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == itemID {
			out[i].Quantity = qty
			return out, nil
		}
	}
	return nil, &domain.ValidationError{Message: MsgItemNotFound}
}

// RemoveItem returns a copy of items without the matching entry. Removing the
// last remaining item is rejected: an order can never be emptied by an edit.
func RemoveItem(items []domain.OrderItem, itemID uint64) ([]domain.OrderItem, error) {
	if len(items) <= 1 {
		return nil, &domain.ValidationError{Message: MsgLastItem}
	}
	out := make([]domain.OrderItem, 0, len(items)-1)
	found := false
	for _, it := range items {
		if it.ID == itemID {
			found = true
			continue
		}
		out = append(out, it)
	}
	if !found {
		return nil, &domain.ValidationError{Message: MsgItemNotFound}
	}
	return out, nil
}

// Action names an order-item mutation understood by the order service.
type Action string

const (
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionRemove Action = "remove"
)

// Op is one remote order-item mutation.
type Op struct {
	Action    Action `json:"action"`
	ItemID    uint64 `json:"item_id,omitempty"`
	ProductID uint64 `json:"product_id,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
}

// AddOp builds the immediate remote add for a product picked from search.
// Quantity is always 1; the backend merges with an existing line for the same
// product instead of duplicating it.
func AddOp(productID uint64) Op {
	return Op{Action: ActionAdd, ProductID: productID, Quantity: 1}
}

// Plan is an ordered mutation batch. Removals run strictly before edits so a
// line is never edited after it is gone, and each group keeps the iteration
// order of the diff.
type Plan struct {
	Removals []Op
	Edits    []Op
}

// Empty reports whether the plan contains no operations.
func (p Plan) Empty() bool {
	return len(p.Removals) == 0 && len(p.Edits) == 0
}

// Ops returns the operations in replay order: all removals, then all edits.
func (p Plan) Ops() []Op {
	ops := make([]Op, 0, len(p.Removals)+len(p.Edits))
	ops = append(ops, p.Removals...)
	ops = append(ops, p.Edits...)
	return ops
}

// Diff compares the last-fetched server items against the working copy and
// returns the plan that transforms one into the other. Items only reach the
// working copy through SetQuantity/RemoveItem, so quantity bounds are already
// guaranteed and pure local additions cannot occur (adds go straight to the
// backend and show up in both lists on the next fetch).
func Diff(original, current []domain.OrderItem) Plan {
	currentByID := make(map[uint64]domain.OrderItem, len(current))
	for _, it := range current {
		currentByID[it.ID] = it
	}

	var plan Plan
	for _, orig := range original {
		cur, ok := currentByID[orig.ID]
		if !ok {
			plan.Removals = append(plan.Removals, Op{Action: ActionRemove, ItemID: orig.ID})
			continue
		}
		if cur.Quantity != orig.Quantity {
			plan.Edits = append(plan.Edits, Op{Action: ActionEdit, ItemID: orig.ID, Quantity: cur.Quantity})
		}
	}
	return plan
}

// PartialBatchError reports a replay that failed after at least one operation
// had already been applied. Applied operations stay applied on the server;
// whoever receives this must re-fetch the canonical order before trusting
// local state again.
type PartialBatchError struct {
	Applied []Op
	Failed  Op
	Err     error
}

func (e *PartialBatchError) Error() string {
	return fmt.Sprintf("se aplicaron %d operaciones antes de fallar la acción %s: %v",
		len(e.Applied), e.Failed.Action, e.Err)
}

func (e *PartialBatchError) Unwrap() error {
	return e.Err
}
