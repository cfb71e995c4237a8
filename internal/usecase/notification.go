package usecase

import (
	"fmt"
	"strings"

	"wondershop/internal/domain/entities"
)

// BuildAdminNotice renders the operator alert for a committed order.
func BuildAdminNotice(o entities.Order) string {
	return fmt.Sprintf(
		"🚨 *Новый заказ #%d*\n📦 Товар: %s\n🔢 Количество: %d\n👤 Пользователь: %s",
		o.ID, o.ProductName, o.Quantity, buyerHandle(o.BuyerID),
	)
}

// BuildBuyerReceipt renders the buyer confirmation. p is the product as it
// stood after the transaction; the order snapshot wins when the two disagree.
func BuildBuyerReceipt(o entities.Order, p entities.Product) string {
	name := o.ProductName
	if name == "" {
		name = p.Name
	}
	return fmt.Sprintf(
		"🎉 Заказ #%d успешно оформлен!\n📦 Товар: %s\n🔢 Количество: %d шт.\nАдминистратор свяжется с вами в ближайшее время.",
		o.ID, name, o.Quantity,
	)
}

// OperatorNotices addresses the admin notice to every operator in the roster.
func OperatorNotices(o entities.Order, roster []string) []entities.Intent {
	text := BuildAdminNotice(o)
	out := make([]entities.Intent, 0, len(roster))
	for _, op := range roster {
		out = append(out, entities.SendText(op, text))
	}
	return out
}

// buyerHandle prefixes chat handles with @ and leaves numeric ids bare.
func buyerHandle(buyerID string) string {
	if buyerID == "" {
		return "—"
	}
	if strings.Trim(buyerID, "0123456789") == "" {
		return "id" + buyerID
	}
	return "@" + buyerID
}
