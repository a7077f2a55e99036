package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mibon4ik/toyota-sub000/models"
)

// OrderStore keeps orders in a single JSON file, append-mostly. Same
// whole-file read-modify-write model as UserStore, with one deliberate
// difference: a corrupt orders file is logged and treated as empty instead of
// failing every checkout.
type OrderStore struct {
	mu   sync.Mutex
	path string

	// now is swappable in tests.
	now func() time.Time
}

// NewOrderStore ensures the backing directory and file exist and returns the
// store.
func NewOrderStore(path string) (*OrderStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	s := &OrderStore{path: path, now: time.Now}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.save([]models.Order{}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat orders file: %w", err)
	}
	return s, nil
}

// CreateOrderInput is the checkout payload. Status is accepted for shape
// compatibility with the client but always overridden to pending.
type CreateOrderInput struct {
	CustomerInfo    models.CustomerInfo
	ShippingAddress models.ShippingAddress
	Items           []models.OrderItem
	PaymentMethod   models.PaymentMethod
	Status          models.OrderStatus
}

// Create stores a new order: it rejects empty item lists, assigns a
// timestamp-plus-random id so rapid successive checkouts cannot collide,
// stamps the order date, recomputes the total from the item lines and forces
// the status to pending.
func (s *OrderStore) Create(in CreateOrderInput) (models.Order, error) {
	if len(in.Items) == 0 {
		return models.Order{}, ErrEmptyOrder
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return models.Order{}, err
	}

	var total float64
	for _, item := range in.Items {
		total += item.Price * float64(item.Quantity)
	}

	created := s.now()
	order := models.Order{
		ID:              created.Format("20060102150405") + "-" + uuid.NewString(),
		OrderDate:       created,
		CustomerInfo:    in.CustomerInfo,
		ShippingAddress: in.ShippingAddress,
		Items:           in.Items,
		TotalAmount:     total,
		PaymentMethod:   in.PaymentMethod,
		Status:          models.OrderStatusPending,
	}

	orders = append(orders, order)
	if err := s.save(orders); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// List returns all orders sorted by order date, newest first. The ordering is
// part of the contract: the admin panel renders the list as returned.
func (s *OrderStore) List() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
	return orders, nil
}

// Get returns the order or (nil, nil) when the id is unknown.
func (s *OrderStore) Get(id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			o := orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

// UpdateStatus sets a new status on the order. The status value must be one
// of the known constants, and orders in a terminal state (delivered,
// cancelled) cannot transition further.
func (s *OrderStore) UpdateStatus(id string, status models.OrderStatus) (models.Order, error) {
	switch status {
	case models.OrderStatusPending, models.OrderStatusProcessing, models.OrderStatusShipped,
		models.OrderStatusDelivered, models.OrderStatusCancelled:
	default:
		return models.Order{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return models.Order{}, err
	}
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if orders[i].Status.Terminal() {
			return models.Order{}, fmt.Errorf("%w: order already %s", ErrInvalidStatus, orders[i].Status)
		}
		orders[i].Status = status
		if err := s.save(orders); err != nil {
			return models.Order{}, err
		}
		return orders[i], nil
	}
	return models.Order{}, ErrNotFound
}

// load reads the whole file. A missing file means an empty store; a corrupt
// file is logged and also treated as empty, so a damaged orders log never
// takes the storefront down.
func (s *OrderStore) load() ([]models.Order, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []models.Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read orders file: %w", err)
	}
	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		log.Printf("⚠️ Corrupt orders file %s, starting empty: %v", s.path, err)
		return []models.Order{}, nil
	}
	return orders, nil
}

func (s *OrderStore) save(orders []models.Order) error {
	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write orders file: %w", err)
	}
	return nil
}
