package entities

import (
	"errors"
	"testing"
)

func TestParseAction(t *testing.T) {
	cases := []struct {
		token string
		want  Action
	}{
		{"add_product", AddProduct{}},
		{"delete_product", DeleteProduct{}},
		{"buy_product", BuyProduct{}},
		{"view_products", ViewProducts{}},
		{"view_products_admin", ViewProducts{}},
		{"view_orders", ViewOrders{}},
		{"confirm_order", ConfirmOrder{}},
		{"cancel_order", CancelOrder{}},
		{"select_12", SelectProduct{ProductID: 12}},
		{" remove_3 ", RemoveProduct{ProductID: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			got, err := ParseAction(tc.token)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %#v, got %#v", tc.want, got)
			}
		})
	}

	for _, bad := range []string{"", "select_", "select_x", "select_0", "select_-1", "remove_", "checkout"} {
		t.Run("reject "+bad, func(t *testing.T) {
			if _, err := ParseAction(bad); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestActionTokenRoundTrip(t *testing.T) {
	for _, a := range []Action{SelectProduct{ProductID: 7}, RemoveProduct{ProductID: 9}, ConfirmOrder{}} {
		got, err := ParseAction(a.Token())
		if err != nil || got != a {
			t.Fatalf("round trip of %#v gave %#v, %v", a, got, err)
		}
	}
}

func TestEventBuyerID(t *testing.T) {
	if got := (Event{UserID: "42", Username: "alice"}).BuyerID(); got != "alice" {
		t.Fatalf("expected username, got %q", got)
	}
	if got := (Event{UserID: "42"}).BuyerID(); got != "42" {
		t.Fatalf("expected user id, got %q", got)
	}
}

func TestProductPhotoOr(t *testing.T) {
	if got := (Product{}).PhotoOr("d.jpg"); got != "d.jpg" {
		t.Fatalf("expected default, got %q", got)
	}
	if got := (Product{PhotoRef: "p.jpg"}).PhotoOr("d.jpg"); got != "p.jpg" {
		t.Fatalf("expected own photo, got %q", got)
	}
}
