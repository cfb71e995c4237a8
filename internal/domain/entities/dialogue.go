package entities

import "time"

// Flow names the conversation a dialogue instance belongs to.
type Flow string

const (
	FlowAddProduct    Flow = "add_product"
	FlowPurchase      Flow = "purchase"
	FlowDeleteProduct Flow = "delete_product"
)

// Phase is a state of the dialogue state machine.
//
// PhaseSelectingAction is the resting state: the user sits at the main menu
// and no dialogue instance is live.
type Phase string

const (
	PhaseSelectingAction Phase = "selecting_action"

	PhaseName     Phase = "name"
	PhaseQuantity Phase = "quantity"
	PhasePhoto    Phase = "photo"

	PhaseSelectProduct  Phase = "select_product"
	PhaseSelectQuantity Phase = "select_quantity"
	PhaseConfirm        Phase = "confirm"

	PhaseDeleteSelect Phase = "delete_select"
)

// Draft carries the partially collected input of a live dialogue.
type Draft struct {
	Name      string
	Quantity  int
	ProductID int64
}

// Session is one live dialogue instance owned by a single user.
type Session struct {
	ID        string
	UserID    string
	Flow      Flow
	Phase     Phase
	Draft     Draft
	UpdatedAt time.Time
}
