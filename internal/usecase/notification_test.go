package usecase

import (
	"strings"
	"testing"

	"wondershop/internal/domain/entities"
)

func TestBuildAdminNotice(t *testing.T) {
	t.Run("handle buyer", func(t *testing.T) {
		got := BuildAdminNotice(entities.Order{ID: 7, ProductName: "Кружка", Quantity: 3, BuyerID: "alice"})
		want := "🚨 *Новый заказ #7*\n📦 Товар: Кружка\n🔢 Количество: 3\n👤 Пользователь: @alice"
		if got != want {
			t.Fatalf("unexpected notice:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("numeric buyer", func(t *testing.T) {
		got := BuildAdminNotice(entities.Order{ID: 1, ProductName: "x", Quantity: 1, BuyerID: "12345"})
		if !strings.HasSuffix(got, "👤 Пользователь: id12345") {
			t.Fatalf("unexpected notice: %s", got)
		}
	})
}

func TestBuildBuyerReceipt(t *testing.T) {
	t.Run("uses order snapshot name", func(t *testing.T) {
		got := BuildBuyerReceipt(
			entities.Order{ID: 2, ProductName: "old", Quantity: 1},
			entities.Product{ID: 1, Name: "renamed"},
		)
		if !strings.Contains(got, "Заказ #2") || !strings.Contains(got, "Товар: old") {
			t.Fatalf("unexpected receipt: %s", got)
		}
	})

	t.Run("falls back to product name", func(t *testing.T) {
		got := BuildBuyerReceipt(entities.Order{ID: 3, Quantity: 2}, entities.Product{Name: "Лампа"})
		if !strings.Contains(got, "Товар: Лампа") || !strings.Contains(got, "2 шт.") {
			t.Fatalf("unexpected receipt: %s", got)
		}
	})
}

func TestOperatorNotices(t *testing.T) {
	o := entities.Order{ID: 1, ProductName: "a", Quantity: 1, BuyerID: "bob"}

	got := OperatorNotices(o, []string{"op1", "op2"})
	if len(got) != 2 {
		t.Fatalf("expected 2 intents, got %d", len(got))
	}
	for i, target := range []string{"op1", "op2"} {
		if got[i].Kind != entities.IntentSendText || got[i].TargetID != target || got[i].Text != BuildAdminNotice(o) {
			t.Fatalf("unexpected intent %d: %+v", i, got[i])
		}
	}

	if n := OperatorNotices(o, nil); len(n) != 0 {
		t.Fatalf("expected no intents for empty roster, got %d", len(n))
	}
}
