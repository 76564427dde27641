package mongodb

import (
	"context"
	"errors"
	"strconv"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// createAttempts bounds the retry loop for id collisions on insert.
const createAttempts = 3

// OrderStore is the remote implementation of ports.OrderStore backed by the
// orders collection. Errors are returned to the caller; the fallback adapter
// is responsible for recovering them against the in-memory store.
type OrderStore struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewOrderStore creates an order store over the given client's orders collection.
func NewOrderStore(client *mongo.Client) *OrderStore {
	return NewOrderStoreWithClock(client, time.Now)
}

// NewOrderStoreWithClock creates a store with a custom clock, for tests.
func NewOrderStoreWithClock(client *mongo.Client, now func() time.Time) *OrderStore {
	return &OrderStore{
		coll: client.Database(pizzaDatabase).Collection(ordersCollection),
		now:  now,
	}
}

// List returns anonymized orders matching the filter.
func (s *OrderStore) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	ctx, cancel := callContext(ctx)
	defer cancel()

	query := bson.M{}
	if filter.UserID != "" {
		query["userId"] = filter.UserID
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, status.String())
		}
		query["status"] = bson.M{"$in": statuses}
	}
	if filter.Since > 0 {
		query["createdAt"] = bson.M{"$gte": s.now().Add(-filter.Since)}
	}

	cursor, err := s.coll.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var dtos []orderDTO
	if err := cursor.All(ctx, &dtos); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, o.Anonymized())
	}
	return orders, nil
}

// Get returns the order with the given id, or (nil, nil) when absent.
func (s *OrderStore) Get(ctx context.Context, id string, withOwner bool) (*order.Order, error) {
	ctx, cancel := callContext(ctx)
	defer cancel()

	dto, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, nil
	}

	o, err := toDomain(*dto)
	if err != nil {
		return nil, err
	}
	if !withOwner {
		o = o.Anonymized()
	}
	return o, nil
}

// Create assigns a time-based identifier, inserts the document, and returns
// the stored record without its owner identifier. On the rare id collision
// within one millisecond the insert is retried with a bumped id.
func (s *OrderStore) Create(ctx context.Context, o *order.Order) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := callContext(ctx)
	defer cancel()

	ms := s.now().UnixMilli()
	for attempt := 0; attempt < createAttempts; attempt++ {
		stored := *o
		if err := stored.AssignID(strconv.FormatInt(ms, 10)); err != nil {
			return nil, err
		}

		_, err := s.coll.InsertOne(ctx, fromDomain(&stored))
		if err == nil {
			return stored.Anonymized(), nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, err
		}
		ms++
	}
	return nil, errors.New("could not assign a unique order id")
}

// Cancel reads the order and replaces it with status Cancelled, but only
// while the current status is Pending. Returns (nil, nil) otherwise.
func (s *OrderStore) Cancel(ctx context.Context, id string) (*order.Order, error) {
	ctx, cancel := callContext(ctx)
	defer cancel()

	dto, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dto == nil || dto.Status != order.Pending.String() {
		return nil, nil
	}

	dto.Status = order.Cancelled.String()
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": id}, dto); err != nil {
		return nil, err
	}

	o, err := toDomain(*dto)
	if err != nil {
		return nil, err
	}
	return o.Anonymized(), nil
}

// Update reads the order, blindly merges the patch, and replaces the
// document. Returns (nil, nil) when the order does not exist.
func (s *OrderStore) Update(ctx context.Context, id string, patch ports.OrderPatch) (*order.Order, error) {
	ctx, cancel := callContext(ctx)
	defer cancel()

	dto, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, nil
	}

	merged := applyPatch(*dto, patch, s.now())
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": id}, merged); err != nil {
		return nil, err
	}

	o, err := toDomain(merged)
	if err != nil {
		return nil, err
	}
	return o.Anonymized(), nil
}

// findByID fetches a single order document, mapping "no documents" to nil.
func (s *OrderStore) findByID(ctx context.Context, id string) (*orderDTO, error) {
	var dto orderDTO
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&dto)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dto, nil
}
