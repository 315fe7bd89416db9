package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/nurshop/storefront/internal/errors"
	"github.com/nurshop/storefront/internal/models"
	"github.com/nurshop/storefront/internal/pricing"
	repository "github.com/nurshop/storefront/internal/repositories"
)

// statusRank orders the external status machine: pending → confirmed →
// delivered, never backwards.
var statusRank = map[models.OrderStatus]int{
	models.OrderStatusPending:   0,
	models.OrderStatusConfirmed: 1,
	models.OrderStatusDelivered: 2,
}

// OrderService is the sole owner of order history and the order creation
// protocol. Placing an order never touches the cart store; clearing the cart
// afterwards is the caller's contract.
type OrderService struct {
	repo      repository.OrderRepository
	validate  *validator.Validate
	sanitizer *bluemonday.Policy

	mu     sync.Mutex
	orders []models.Order
}

func NewOrderService(ctx context.Context, repo repository.OrderRepository) (*OrderService, error) {

	validate := validator.New()
	if err := models.RegisterValidations(validate); err != nil {
		return nil, fmt.Errorf("failed to register validations: %w", err)
	}

	s := &OrderService{
		repo:      repo,
		validate:  validate,
		sanitizer: bluemonday.StrictPolicy(),
	}

	s.orders, _ = repo.Load(ctx)

	return s, nil
}

// PlaceOrder snapshots the given cart lines into a new pending order.
func (s *OrderService) PlaceOrder(ctx context.Context, lines []models.CartLine, customer models.CustomerInfo) (*models.Order, error) {

	if len(lines) == 0 {
		return nil, errors.BadRequestError("Cannot place an order with an empty cart")
	}

	if err := s.validate.Struct(customer); err != nil {

		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			return nil, errors.ValidationError("Invalid customer information").
				WithDetail(fieldErrors(validationErrs)).
				WithError(validationErrs)
		}

		return nil, errors.InternalError("Unexpected validation failure").WithError(err)
	}

	customer.Name = s.sanitizer.Sanitize(customer.Name)
	customer.Address = s.sanitizer.Sanitize(customer.Address)
	customer.City = s.sanitizer.Sanitize(customer.City)
	customer.Area = s.sanitizer.Sanitize(customer.Area)

	items := make([]models.CartLine, len(lines))
	copy(items, lines)

	var sub pricing.Amount
	for _, l := range items {
		sub += l.LineTotal()
	}

	order := models.Order{
		ID:             generateOrderID(),
		Items:          items,
		Customer:       customer,
		Subtotal:       sub,
		DeliveryCharge: pricing.DeliveryCharge,
		Total:          sub + pricing.DeliveryCharge,
		Status:         models.OrderStatusPending,
		CreatedAt:      time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, order)

	if err := s.repo.Save(ctx, s.orders); err != nil {
		s.orders = s.orders[:len(s.orders)-1]

		return nil, errors.StorageError("Failed to persist order").WithError(err)
	}

	return &order, nil
}

// List returns the order log in insertion order, newest last.
func (s *OrderService) List() []models.Order {

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)

	return out
}

// Search filters orders whose id or customer phone contains the term,
// case-insensitively. Substring match, not fuzzy.
func (s *OrderService) Search(term string) []models.Order {

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return s.List()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []models.Order

	for _, o := range s.orders {
		if strings.Contains(strings.ToLower(o.ID), term) ||
			strings.Contains(strings.ToLower(o.Customer.Phone), term) {
			matched = append(matched, o)
		}
	}

	return matched
}

// Cancel deletes a pending order from the log. Unknown ids are a no-op so
// double-clicking cancel stays harmless; confirmed or delivered orders can no
// longer be cancelled.
func (s *OrderService) Cancel(ctx context.Context, orderID string) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			idx = i

			break
		}
	}

	if idx == -1 {
		return nil
	}

	if s.orders[idx].Status != models.OrderStatusPending {
		return errors.BadRequestError("Only pending orders can be cancelled")
	}

	s.orders = append(s.orders[:idx], s.orders[idx+1:]...)

	if err := s.repo.Save(ctx, s.orders); err != nil {
		return errors.StorageError("Failed to persist orders").WithError(err)
	}

	return nil
}

// UpdateStatus applies an externally driven status transition. Only forward
// moves through pending → confirmed → delivered are allowed.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {

	if _, ok := statusRank[status]; !ok {
		return nil, errors.BadRequestError("Unknown order status: " + string(status))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}

		if statusRank[status] <= statusRank[s.orders[i].Status] {
			return nil, errors.BadRequestError(fmt.Sprintf(
				"Cannot move order from %s to %s", s.orders[i].Status, status))
		}

		s.orders[i].Status = status

		if err := s.repo.Save(ctx, s.orders); err != nil {
			return nil, errors.StorageError("Failed to persist orders").WithError(err)
		}

		order := s.orders[i]

		return &order, nil
	}

	return nil, errors.NotFoundError("Order not found: " + orderID)
}

// generateOrderID matches the storefront's order number format:
// NUR-<compact UTC timestamp>-<zero-padded 3-digit random>.
func generateOrderID() string {
	return fmt.Sprintf("NUR-%s-%03d", time.Now().UTC().Format("20060102T150405"), rand.IntN(1000))
}

func fieldErrors(errs validator.ValidationErrors) string {

	msgs := make([]string, 0, len(errs))

	for _, err := range errs {
		switch err.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("Field %s is required", err.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("Field %s must be a valid email address", err.Field()))
		case "bd_mobile":
			msgs = append(msgs, fmt.Sprintf("Field %s must be a valid Bangladeshi mobile number", err.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("Field %s is invalid: %s=%s", err.Field(), err.Tag(), err.Param()))
		}
	}

	return strings.Join(msgs, "; ")
}
