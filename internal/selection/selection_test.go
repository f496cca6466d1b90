package selection

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/domain"
	"github.com/SadiqNaizam/MLO-a774-fa95/pkg/errors"
)

func hoodie() *domain.Product {
	return &domain.Product{
		ID:    "prod-3",
		Name:  "Premium Quality Hoodie",
		Price: decimal.NewFromFloat(79.99),
		Sizes: []string{"S", "M", "L"},
		Colors: []domain.ColorOption{
			{ID: "c1", Name: "Ocean Blue", Hex: "#6495ED", Available: true},
			{ID: "c3", Name: "Forest Green", Hex: "#228B22", Available: false},
		},
	}
}

func TestValidateRequiresSizeAndColor(t *testing.T) {
	s := New(hoodie())
	if _, err := s.ValidateForAddToCart(); err == nil {
		t.Fatal("expected error with nothing selected")
	} else if _, ok := err.(*errors.ErrIncompleteSelection); !ok {
		t.Fatalf("expected ErrIncompleteSelection, got %T", err)
	}

	s.SelectSize("M")
	if _, err := s.ValidateForAddToCart(); err == nil {
		t.Fatal("expected error with no color selected")
	}

	s.SelectColor("c1")
	draft, err := s.ValidateForAddToCart()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.VariantLabel != "Ocean Blue, M" {
		t.Errorf("variant label = %q, want %q", draft.VariantLabel, "Ocean Blue, M")
	}
	if draft.Quantity != 1 {
		t.Errorf("default quantity = %d, want 1", draft.Quantity)
	}
	if draft.UnitPrice.StringFixed(2) != "79.99" {
		t.Errorf("unit price = %s, want 79.99", draft.UnitPrice)
	}
}

func TestValidateRejectsUnavailableColor(t *testing.T) {
	s := New(hoodie())
	s.SelectSize("L")
	s.SelectColor("c3")
	if _, err := s.ValidateForAddToCart(); err == nil {
		t.Fatal("expected error for unavailable color")
	} else if _, ok := err.(*errors.ErrIncompleteSelection); !ok {
		t.Fatalf("expected ErrIncompleteSelection, got %T", err)
	}
}

func TestValidateRejectsUnknownColor(t *testing.T) {
	s := New(hoodie())
	s.SelectSize("S")
	s.SelectColor("no-such-color")
	if _, err := s.ValidateForAddToCart(); err == nil {
		t.Fatal("expected error for unknown color id")
	}
}

func TestSetQuantityClampsToOne(t *testing.T) {
	s := New(hoodie())
	for _, n := range []int{0, -5} {
		s.SetQuantity(n)
		if s.Quantity() != 1 {
			t.Errorf("SetQuantity(%d): quantity = %d, want 1", n, s.Quantity())
		}
	}
	s.SetQuantity(3)
	if s.Quantity() != 3 {
		t.Errorf("quantity = %d, want 3", s.Quantity())
	}
}

func TestSetQuantityStringClampsBadInput(t *testing.T) {
	s := New(hoodie())
	for _, raw := range []string{"", "abc", "-2", "0"} {
		s.SetQuantityString(raw)
		if s.Quantity() != 1 {
			t.Errorf("SetQuantityString(%q): quantity = %d, want 1", raw, s.Quantity())
		}
	}
	s.SetQuantityString("4")
	if s.Quantity() != 4 {
		t.Errorf("quantity = %d, want 4", s.Quantity())
	}
}

func TestDraftDoesNotDependOnLaterMutation(t *testing.T) {
	s := New(hoodie())
	s.SelectSize("M")
	s.SelectColor("c1")
	s.SetQuantity(2)
	draft, err := s.ValidateForAddToCart()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.SetQuantity(9)
	if draft.Quantity != 2 {
		t.Errorf("draft quantity changed after mutation: %d", draft.Quantity)
	}
}
