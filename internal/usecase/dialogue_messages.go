package usecase

import (
	"fmt"
	"strings"

	"wondershop/internal/domain/entities"
)

const (
	msgWelcome       = "👋 Добро пожаловать в *Магазинчик Чудес*!\n\nЗдесь вы можете приобрести уникальные товары по выгодным ценам!"
	msgAskName       = "📝 Введите название нового товара:"
	msgEmptyName     = "❌ Название не может быть пустым! Введите название товара:"
	msgAskQuantity   = "🔢 Введите количество товара:"
	msgBadQuantity   = "❌ Некорректное количество! Введите целое число больше 0:"
	msgAskPhoto      = "📸 Пришлите фото товара:"
	msgNoProducts    = "😔 В настоящее время товаров нет в наличии."
	msgNoOrders      = "📭 Список заказов пуст."
	msgChooseProduct = "🎁 Выберите товар для покупки:"
	msgPickFromList  = "👆 Выберите товар из списка выше."
	msgTypeQuantity  = "🔢 Введите количество числом:"
	msgConfirmHint   = "Нажмите «✅ Подтвердить заказ» или «❌ Отменить»."
	msgChooseDelete  = "🗑️ Выберите товар для удаления:"
	msgUnavailable   = "❌ Этот товар больше недоступен!"
	msgOutOfStock    = "❌ Недостаточно товара на складе. Заказ не оформлен."
	msgOrderFailed   = "⚠️ Не удалось оформить заказ. Попробуйте позже."
	msgFailed        = "⚠️ Произошла ошибка. Попробуйте позже."
	msgRefused       = "⛔ Это действие доступно только администраторам."
	msgCancelled     = "❌ Действие отменено."
)

func adminMenu() [][]entities.Button {
	return [][]entities.Button{
		{{Text: "➕ Добавить товар", Action: entities.TokenAddProduct}},
		{{Text: "🗑️ Удалить товар", Action: entities.TokenDeleteProduct}},
		{{Text: "📦 Список товаров", Action: entities.TokenViewProductsAdmin}},
		{{Text: "📋 Список заказов", Action: entities.TokenViewOrders}},
	}
}

func buyerMenu() [][]entities.Button {
	return [][]entities.Button{
		{{Text: "🛍️ Купить товар", Action: entities.TokenBuyProduct}},
		{{Text: "📦 Наши товары", Action: entities.TokenViewProducts}},
	}
}

func menuFor(privileged bool) [][]entities.Button {
	if privileged {
		return adminMenu()
	}
	return buyerMenu()
}

func confirmButtons() [][]entities.Button {
	return [][]entities.Button{
		{{Text: "✅ Подтвердить заказ", Action: entities.TokenConfirmOrder}},
		{{Text: "❌ Отменить", Action: entities.TokenCancelOrder}},
	}
}

func productButtons(products []entities.Product, action func(id int64) entities.Action) [][]entities.Button {
	rows := make([][]entities.Button, 0, len(products))
	for _, p := range products {
		rows = append(rows, []entities.Button{{
			Text:   fmt.Sprintf("%s (%d шт.)", p.Name, p.Quantity),
			Action: action(p.ID).Token(),
		}})
	}
	return rows
}

func productCaption(p entities.Product) string {
	return fmt.Sprintf("🛍 *%s*\n📦 Остаток: %d шт.\n🆔 ID: %d", p.Name, p.Quantity, p.ID)
}

func productAdded(p entities.Product) string {
	return fmt.Sprintf("✅ Товар успешно добавлен!\n\n*Название:* %s\n*Количество:* %d\n🆔 ID: %d", p.Name, p.Quantity, p.ID)
}

func productDeleted(id int64) string {
	return fmt.Sprintf("🗑️ Товар #%d удалён.", id)
}

func askQuantityFor(p entities.Product) string {
	return fmt.Sprintf("🔢 Введите количество для товара *%s*\nДоступно: %d шт.", p.Name, p.Quantity)
}

func badQuantityFor(p entities.Product) string {
	return fmt.Sprintf("❌ Некорректное количество! Введите целое число от 1 до %d:", p.Quantity)
}

func confirmCaption(p entities.Product, quantity int) string {
	return fmt.Sprintf("🛒 *Подтверждение заказа*\n\n📦 Товар: %s\n🔢 Количество: %d шт.", p.Name, quantity)
}

func ordersText(orders []entities.Order) string {
	var b strings.Builder
	b.WriteString("📋 *Список заказов:*\n\n")
	for _, o := range orders {
		fmt.Fprintf(&b, "🆔 Заказ #%d\n📦 Товар: %s\n🔢 Количество: %d шт.\n👤 Пользователь: %s\n────────────────────\n",
			o.ID, o.ProductName, o.Quantity, buyerHandle(o.BuyerID))
	}
	return b.String()
}

// phasePrompt is repeated when a phase receives an input of the wrong kind.
func phasePrompt(phase entities.Phase) string {
	switch phase {
	case entities.PhaseName:
		return msgAskName
	case entities.PhaseQuantity:
		return msgAskQuantity
	case entities.PhasePhoto:
		return msgAskPhoto
	case entities.PhaseSelectQuantity:
		return msgTypeQuantity
	case entities.PhaseConfirm:
		return msgConfirmHint
	default:
		return msgPickFromList
	}
}
