package service

import (
	"context"
	"sync"
	"time"

	"github.com/nurshop/storefront/internal/errors"
	"github.com/nurshop/storefront/internal/models"
	"github.com/nurshop/storefront/internal/pricing"
	repository "github.com/nurshop/storefront/internal/repositories"
)

// CartService is the sole owner of cart state and its persistence. It is
// constructed once and passed to every consumer; there is no ambient
// singleton. A mutex serializes read-modify-write within the process; across
// processes the backing store is last-write-wins.
type CartService struct {
	repo repository.CartRepository

	mu     sync.Mutex
	lines  []models.CartLine
	lastID int64
}

func NewCartService(ctx context.Context, repo repository.CartRepository) *CartService {

	s := &CartService{repo: repo}

	// Load soft-fails to an empty cart inside the repository.
	s.lines, _ = repo.Load(ctx)

	for _, l := range s.lines {
		if l.ID > s.lastID {
			s.lastID = l.ID
		}
	}

	return s
}

// Load re-reads the cart from storage, replacing in-memory state.
func (s *CartService) Load(ctx context.Context) ([]models.CartLine, error) {

	lines, err := s.repo.Load(ctx)
	if err != nil {
		return nil, errors.StorageError("Failed to load cart").WithError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = lines

	return s.copyLines(), nil
}

// Add puts a product+size into the cart, snapshotting the discounted unit
// price. An existing (productId, size) line has its quantity incremented
// instead of a duplicate being appended.
func (s *CartService) Add(ctx context.Context, product *models.Product, size string, quantity int) ([]models.CartLine, error) {

	if product == nil {
		return nil, errors.BadRequestError("Product is required")
	}

	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false

	for i := range s.lines {
		if s.lines[i].ProductID == product.ID && s.lines[i].Size == size {
			s.lines[i].Quantity += quantity
			merged = true

			break
		}
	}

	if !merged {
		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}

		s.lines = append(s.lines, models.CartLine{
			ID:        s.nextLineID(),
			ProductID: product.ID,
			Name:      product.TitleBN,
			UnitPrice: product.DiscountedPrice(),
			Size:      size,
			Quantity:  quantity,
			Image:     image,
		})
	}

	if err := s.repo.Save(ctx, s.lines); err != nil {
		return nil, errors.StorageError("Failed to persist cart").WithError(err)
	}

	return s.copyLines(), nil
}

// UpdateQuantity applies delta to a line's quantity. Driving the quantity to
// zero or below removes the line. An unknown line id is a no-op so repeated
// UI clicks stay idempotent.
func (s *CartService) UpdateQuantity(ctx context.Context, lineID int64, delta int) ([]models.CartLine, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1

	for i := range s.lines {
		if s.lines[i].ID == lineID {
			idx = i

			break
		}
	}

	if idx == -1 {
		return s.copyLines(), nil
	}

	s.lines[idx].Quantity += delta

	if s.lines[idx].Quantity <= 0 {
		s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
	}

	if err := s.repo.Save(ctx, s.lines); err != nil {
		return nil, errors.StorageError("Failed to persist cart").WithError(err)
	}

	return s.copyLines(), nil
}

// Remove deletes a line outright. Unknown ids are a no-op.
func (s *CartService) Remove(ctx context.Context, lineID int64) ([]models.CartLine, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]

	for _, l := range s.lines {
		if l.ID != lineID {
			kept = append(kept, l)
		}
	}

	s.lines = kept

	if err := s.repo.Save(ctx, s.lines); err != nil {
		return nil, errors.StorageError("Failed to persist cart").WithError(err)
	}

	return s.copyLines(), nil
}

// Clear empties the cart. Called exactly once per checkout, after the order
// store has accepted the order.
func (s *CartService) Clear(ctx context.Context) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = []models.CartLine{}

	if err := s.repo.Save(ctx, s.lines); err != nil {
		return errors.StorageError("Failed to persist cart").WithError(err)
	}

	return nil
}

func (s *CartService) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.copyLines()
}

// TotalItemCount sums quantities across lines, for the badge.
func (s *CartService) TotalItemCount() int {

	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}

	return total
}

func (s *CartService) Subtotal() pricing.Amount {

	s.mu.Lock()
	defer s.mu.Unlock()

	return subtotal(s.lines)
}

func (s *CartService) DeliveryCharge() pricing.Amount {
	return pricing.DeliveryCharge
}

func (s *CartService) GrandTotal() pricing.Amount {
	return s.Subtotal() + pricing.DeliveryCharge
}

// View projects the cart for the view layer in one consistent snapshot.
func (s *CartService) View() models.CartView {

	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}

	sub := subtotal(s.lines)

	return models.CartView{
		Lines:          s.copyLines(),
		TotalItemCount: count,
		Subtotal:       sub,
		DeliveryCharge: pricing.DeliveryCharge,
		GrandTotal:     sub + pricing.DeliveryCharge,
	}
}

// nextLineID is a unix-milli timestamp, bumped on collision so two adds in
// the same millisecond still get distinct ids. Caller holds the lock.
func (s *CartService) nextLineID() int64 {

	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}

	s.lastID = id

	return id
}

func (s *CartService) copyLines() []models.CartLine {

	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)

	return out
}

func subtotal(lines []models.CartLine) pricing.Amount {

	var total pricing.Amount

	for _, l := range lines {
		total += l.LineTotal()
	}

	return total
}
