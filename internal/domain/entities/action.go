package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// Action is a button press decoded from its callback token.
//
// Tokens are parsed once at the transport boundary with ParseAction; the
// dialogue only ever switches on the concrete variant.
type Action interface {
	Token() string
}

const (
	TokenAddProduct        = "add_product"
	TokenDeleteProduct     = "delete_product"
	TokenBuyProduct        = "buy_product"
	TokenViewProducts      = "view_products"
	TokenViewProductsAdmin = "view_products_admin"
	TokenViewOrders        = "view_orders"
	TokenConfirmOrder      = "confirm_order"
	TokenCancelOrder       = "cancel_order"

	selectPrefix = "select_"
	removePrefix = "remove_"
)

type (
	AddProduct    struct{}
	DeleteProduct struct{}
	BuyProduct    struct{}
	ViewProducts  struct{}
	ViewOrders    struct{}
	ConfirmOrder  struct{}
	CancelOrder   struct{}

	SelectProduct struct{ ProductID int64 }
	RemoveProduct struct{ ProductID int64 }
)

func (AddProduct) Token() string    { return TokenAddProduct }
func (DeleteProduct) Token() string { return TokenDeleteProduct }
func (BuyProduct) Token() string    { return TokenBuyProduct }
func (ViewProducts) Token() string  { return TokenViewProducts }
func (ViewOrders) Token() string    { return TokenViewOrders }
func (ConfirmOrder) Token() string  { return TokenConfirmOrder }
func (CancelOrder) Token() string   { return TokenCancelOrder }

func (a SelectProduct) Token() string {
	return selectPrefix + strconv.FormatInt(a.ProductID, 10)
}

func (a RemoveProduct) Token() string {
	return removePrefix + strconv.FormatInt(a.ProductID, 10)
}

// ParseAction decodes a callback token. Unknown tokens and malformed product
// ids fail with ErrInvalidInput.
func ParseAction(token string) (Action, error) {
	token = strings.TrimSpace(token)
	switch token {
	case TokenAddProduct:
		return AddProduct{}, nil
	case TokenDeleteProduct:
		return DeleteProduct{}, nil
	case TokenBuyProduct:
		return BuyProduct{}, nil
	case TokenViewProducts, TokenViewProductsAdmin:
		return ViewProducts{}, nil
	case TokenViewOrders:
		return ViewOrders{}, nil
	case TokenConfirmOrder:
		return ConfirmOrder{}, nil
	case TokenCancelOrder:
		return CancelOrder{}, nil
	}

	if rest, ok := strings.CutPrefix(token, selectPrefix); ok {
		id, err := parseProductID(rest)
		if err != nil {
			return nil, err
		}
		return SelectProduct{ProductID: id}, nil
	}
	if rest, ok := strings.CutPrefix(token, removePrefix); ok {
		id, err := parseProductID(rest)
		if err != nil {
			return nil, err
		}
		return RemoveProduct{ProductID: id}, nil
	}

	return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, token)
}

func parseProductID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad product id %q", ErrInvalidInput, raw)
	}
	return id, nil
}
