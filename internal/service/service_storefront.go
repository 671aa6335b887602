package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/validators"
	"github.com/MKhiriev/go-storefront/models"
)

// orderedSet keeps members unique and in insertion order.
type orderedSet struct {
	order []string
	index map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{index: make(map[string]struct{})}
}

func (s *orderedSet) add(id string) {
	if _, ok := s.index[id]; ok {
		return
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *orderedSet) remove(id string) {
	if _, ok := s.index[id]; !ok {
		return
	}
	delete(s.index, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *orderedSet) items() []models.CollectionItem {
	out := make([]models.CollectionItem, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, models.CollectionItem{BookID: id})
	}
	return out
}

type userCollections map[models.Collection]*orderedSet

// storefrontService keeps all state in memory; it is lost on restart.
type storefrontService struct {
	mu    sync.Mutex
	users map[int64]userCollections

	validator validators.Validator
	logger    *logger.Logger
}

func NewStorefrontService(validator validators.Validator, logger *logger.Logger) StorefrontService {
	return &storefrontService{
		users:     make(map[int64]userCollections),
		validator: validator,
		logger:    logger,
	}
}

func (s *storefrontService) List(ctx context.Context, userID int64, c models.Collection) ([]models.CollectionItem, error) {
	if err := s.validator.Validate(ctx, c); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection(userID, c).items(), nil
}

func (s *storefrontService) Add(ctx context.Context, userID int64, c models.Collection, bookID string) error {
	if err := s.checkMutation(ctx, userID, c, bookID); err != nil {
		return err
	}

	s.mu.Lock()
	s.collection(userID, c).add(bookID)
	s.mu.Unlock()

	logger.FromContext(ctx).Debug().Str("collection", c.String()).Str("book_id", bookID).Msg("member added")
	return nil
}

func (s *storefrontService) Remove(ctx context.Context, userID int64, c models.Collection, bookID string) error {
	if err := s.checkMutation(ctx, userID, c, bookID); err != nil {
		return err
	}

	s.mu.Lock()
	s.collection(userID, c).remove(bookID)
	s.mu.Unlock()

	logger.FromContext(ctx).Debug().Str("collection", c.String()).Str("book_id", bookID).Msg("member removed")
	return nil
}

func (s *storefrontService) Checkout(ctx context.Context, userID int64) ([]models.CollectionItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.collection(userID, models.CollectionCart)
	bought := s.collection(userID, models.CollectionBought)

	moved := cart.items()
	for _, item := range moved {
		bought.add(item.BookID)
	}
	s.users[userID][models.CollectionCart] = newOrderedSet()

	logger.FromContext(ctx).Info().Int64("user_id", userID).Int("items", len(moved)).Msg("checkout completed")
	return moved, nil
}

// collection must be called with s.mu held.
func (s *storefrontService) collection(userID int64, c models.Collection) *orderedSet {
	u, ok := s.users[userID]
	if !ok {
		u = make(userCollections)
		s.users[userID] = u
	}
	set, ok := u[c]
	if !ok {
		set = newOrderedSet()
		u[c] = set
	}
	return set
}

func (s *storefrontService) checkMutation(ctx context.Context, userID int64, c models.Collection, bookID string) error {
	return s.validator.Validate(ctx, models.CollectionMutation{UserID: userID, Collection: c, BookID: bookID})
}
