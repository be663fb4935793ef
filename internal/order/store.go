package order

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type DuplicateIDError struct {
	ID int64
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate order id %d", e.ID)
}

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	err := validate.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
		_, parseErr := ParseDate(fl.Field().String())
		return parseErr == nil
	})
	if err != nil {
		panic(err)
	}

	return validate
}

var validate = newValidator()

// Validate checks the field constraints of a single order.
func Validate(o Order) error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid order %d: %w", o.ID, err)
	}

	return nil
}

// Store holds the full dataset loaded at startup.
type Store struct {
	orders []Order
	byID   map[int64]int
}

// NewStore validates orders and builds an immutable store. The input slice is copied.
func NewStore(orders []Order) (*Store, error) {
	s := &Store{
		orders: make([]Order, 0, len(orders)),
		byID:   make(map[int64]int, len(orders)),
	}

	for _, o := range orders {
		if err := Validate(o); err != nil {
			return nil, err
		}

		if _, ok := s.byID[o.ID]; ok {
			return nil, &DuplicateIDError{ID: o.ID}
		}

		s.byID[o.ID] = len(s.orders)
		s.orders = append(s.orders, o)
	}

	return s, nil
}

// All returns a copy of every order in load order.
func (s *Store) All() []Order {
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) Len() int {
	return len(s.orders)
}

func (s *Store) Get(id int64) (Order, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Order{}, false
	}
	return s.orders[i], true
}

// Categories returns the distinct categories in first-seen order.
func (s *Store) Categories() []string {
	return distinct(s.orders, func(o Order) string { return o.Category })
}

// Regions returns the distinct regions in first-seen order.
func (s *Store) Regions() []string {
	return distinct(s.orders, func(o Order) string { return o.Region })
}

// Statuses returns the distinct statuses in first-seen order.
func (s *Store) Statuses() []string {
	return distinct(s.orders, func(o Order) string { return string(o.Status) })
}

func distinct(orders []Order, key func(Order) string) []string {
	seen := map[string]bool{}
	values := []string{}

	for _, o := range orders {
		k := key(o)
		if seen[k] {
			continue
		}
		seen[k] = true
		values = append(values, k)
	}

	return values
}
