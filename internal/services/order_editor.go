package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"backoffice-service/internal/domain"
	"backoffice-service/internal/infra"
	rabbit "backoffice-service/internal/infra/rabbitmq"
	"backoffice-service/internal/reconcile"

	"github.com/go-redis/redis/v8"
)

var ErrOrderNotFound = errors.New("order not found")

// MsgNotEditable is returned when an item edit reaches an order that already
// left not_processed.
const MsgNotEditable = "Solo se pueden editar los items de una orden no procesada"

const orderCacheTTL = 10 * time.Second

// OrderEditor applies admin item edits against the order service. Saving is a
// diff-and-replay: the working copy is compared to the freshly fetched
// canonical items and the resulting plan is issued one call at a time,
// removals first, aborting on the first failure. Guarding against two
// concurrent saves for the same order is the caller's job (the SPA disables
// its save button while a batch is outstanding).
type OrderEditor struct {
	orders      infra.OrderClientInterface
	publisher   rabbit.PublisherInterface
	redisClient *redis.Client
}

func NewOrderEditor(orders infra.OrderClientInterface, publisher rabbit.PublisherInterface) *OrderEditor {
	return &OrderEditor{
		orders:    orders,
		publisher: publisher,
	}
}

func (e *OrderEditor) SetRedisClient(client *redis.Client) {
	e.redisClient = client
}

// GetOrder returns the canonical order, served from a short-lived cache when
// possible. Mutations on the order invalidate the cache entry.
func (e *OrderEditor) GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	cacheKey := orderCacheKey(orderID)

	if e.redisClient != nil {
		cached, err := e.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var o domain.Order
			if err := json.Unmarshal([]byte(cached), &o); err == nil {
				return &o, nil
			}
		}
	}

	order, err := e.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if e.redisClient != nil {
		if data, err := json.Marshal(order); err == nil {
			e.redisClient.Set(ctx, cacheKey, data, orderCacheTTL)
		}
	}
	return order, nil
}

// SaveItems reconciles the admin's working copy against the canonical item
// list and replays the difference. On full success the canonical order is
// re-fetched and returned; totals are never computed locally.
//
// Failure modes: a ValidationError before any call when the order is no
// longer editable or the working copy is empty; the collaborator's error
// unchanged when the very first operation fails (nothing committed); a
// PartialBatchError when a later operation fails after earlier ones applied.
func (e *OrderEditor) SaveItems(ctx context.Context, orderID uint64, working []domain.OrderItem) (*domain.Order, error) {
	if len(working) == 0 {
		return nil, &domain.ValidationError{Message: reconcile.MsgLastItem}
	}

	// Diff against the live server state, not a cached copy: a retry after a
	// partial failure must see what already committed.
	order, err := e.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !order.Status.Editable() {
		return nil, &domain.ValidationError{Message: MsgNotEditable}
	}

	plan := reconcile.Diff(order.Items, working)
	if plan.Empty() {
		return order, nil
	}

	applied := make([]reconcile.Op, 0, len(plan.Removals)+len(plan.Edits))
	for _, op := range plan.Ops() {
		if err := e.orders.MutateItem(ctx, orderID, op); err != nil {
			e.invalidateOrderCache(ctx, orderID)
			if len(applied) == 0 {
				return nil, err
			}
			return nil, &reconcile.PartialBatchError{Applied: applied, Failed: op, Err: err}
		}
		applied = append(applied, op)
	}

	e.invalidateOrderCache(ctx, orderID)
	go e.publishItemsReconciled(context.Background(), orderID, plan)

	refreshed, err := e.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if refreshed == nil {
		return nil, ErrOrderNotFound
	}
	return refreshed, nil
}

// AddItem adds a product to the order with quantity 1. Adds are always
// remote: the backend prices the line and merges it with an existing line for
// the same product. The caller resynchronizes from the returned order.
func (e *OrderEditor) AddItem(ctx context.Context, orderID, productID uint64) (*domain.Order, error) {
	order, err := e.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !order.Status.Editable() {
		return nil, &domain.ValidationError{Message: MsgNotEditable}
	}

	if err := e.orders.MutateItem(ctx, orderID, reconcile.AddOp(productID)); err != nil {
		return nil, err
	}

	e.invalidateOrderCache(ctx, orderID)

	refreshed, err := e.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if refreshed == nil {
		return nil, ErrOrderNotFound
	}
	return refreshed, nil
}

func (e *OrderEditor) publishItemsReconciled(ctx context.Context, orderID uint64, plan reconcile.Plan) {
	evt := domain.ItemsReconciledEvent{
		OrderID:      orderID,
		Removed:      len(plan.Removals),
		Edited:       len(plan.Edits),
		ReconciledAt: time.Now(),
	}
	if err := e.publisher.Publish(ctx, "order.items_reconciled", evt); err != nil {
		slog.Error("failed to publish items_reconciled event", "order_id", orderID, "error", err)
	}
}

func (e *OrderEditor) invalidateOrderCache(ctx context.Context, orderID uint64) {
	if e.redisClient != nil {
		e.redisClient.Del(ctx, orderCacheKey(orderID))
	}
}

func orderCacheKey(orderID uint64) string {
	return fmt.Sprintf("orders:%d", orderID)
}
