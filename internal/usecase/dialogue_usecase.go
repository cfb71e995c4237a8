package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"wondershop/internal/domain/entities"
	"wondershop/internal/infrastructure/observability"
	"wondershop/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Outcome summarizes what an event did to the user's dialogue.
type Outcome string

const (
	OutcomePrompt     Outcome = "prompt"
	OutcomeReprompt   Outcome = "reprompt"
	OutcomeCompleted  Outcome = "completed"
	OutcomeCancelled  Outcome = "cancelled"
	OutcomeFailed     Outcome = "failed"
	OutcomeNoProducts Outcome = "no_products"
	OutcomeRefused    Outcome = "refused"
	OutcomeInfo       Outcome = "info"
	OutcomeIgnored    Outcome = "ignored"
)

// Reply is the result of handling one event.
//
// Phase is the user's phase after the event; PhaseSelectingAction means no
// dialogue instance is live. Err carries the error kind behind a re-prompt,
// refusal or failure and is nil otherwise.
type Reply struct {
	Outcome Outcome
	Phase   entities.Phase
	Intents []entities.Intent
	Order   *entities.Order
	Product *entities.Product
	Err     error
}

// IDialogueUseCase drives the per-user conversation.
type IDialogueUseCase interface {
	Handle(ctx context.Context, ev entities.Event) Reply
	Sweep(now time.Time) int
	Session(userID string) (entities.Session, bool)
}

type DialogueConfig struct {
	Operators       []string
	DefaultPhotoRef string
	WelcomePhotoRef string
	SessionTTL      time.Duration
}

// DialogueUseCase owns the session table and runs the add-product, purchase
// and delete-product flows on top of the catalog and inventory use cases.
type DialogueUseCase struct {
	catalog   ICatalogUseCase
	inventory IInventoryUseCase
	orders    IOrderUseCase
	publisher interfaces.IOrderEventPublisher
	cfg       DialogueConfig
	logger    observability.Logger
	sessions  *sessionTable
	now       func() time.Time
}

var _ IDialogueUseCase = (*DialogueUseCase)(nil)

// NewDialogueUseCase wires the dialogue. publisher may be nil.
func NewDialogueUseCase(
	catalog ICatalogUseCase,
	inventory IInventoryUseCase,
	orders IOrderUseCase,
	publisher interfaces.IOrderEventPublisher,
	cfg DialogueConfig,
	logger observability.Logger,
) *DialogueUseCase {
	return &DialogueUseCase{
		catalog:   catalog,
		inventory: inventory,
		orders:    orders,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
		sessions:  newSessionTable(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// publishTimeout bounds the order event publish, which outlives the request.
const publishTimeout = 5 * time.Second

// Handle processes one decoded event for ev.UserID. Events for the same user
// are serialized; events for different users run concurrently.
//
// The OrderPlaced event is published after the user's slot is released, so a
// slow broker never holds up that user's next event.
func (u *DialogueUseCase) Handle(ctx context.Context, ev entities.Event) Reply {
	reply := u.handleSerialized(ctx, ev)
	if reply.Outcome == OutcomeCompleted && reply.Order != nil {
		u.publishOrderPlaced(ctx, *reply.Order)
	}
	return reply
}

func (u *DialogueUseCase) handleSerialized(ctx context.Context, ev entities.Event) Reply {
	slot := u.sessions.acquire(ev.UserID)
	defer u.sessions.release(ev.UserID, slot)

	slot.mu.Lock()
	defer slot.mu.Unlock()

	now := u.now()
	if slot.session != nil && expired(slot.session, now, u.cfg.SessionTTL) {
		u.logger.Info("[dialogue][usecase] session expired",
			zap.String("user_id", ev.UserID),
			zap.String("session_id", slot.session.ID),
		)
		slot.session = nil
	}

	reply := u.dispatch(ctx, slot, ev, now)
	if reply.Phase == "" {
		reply.Phase = entities.PhaseSelectingAction
		if slot.session != nil {
			reply.Phase = slot.session.Phase
		}
	}
	return reply
}

func (u *DialogueUseCase) publishOrderPlaced(ctx context.Context, order entities.Order) {
	if u.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := u.publisher.PublishOrderPlaced(ctx, order); err != nil {
		u.logger.Warn("[dialogue][usecase] order event not published", zap.Error(err), zap.Int64("order_id", order.ID))
	}
}

// Sweep evicts sessions idle for longer than the configured TTL.
func (u *DialogueUseCase) Sweep(now time.Time) int {
	return u.sessions.sweep(now, u.cfg.SessionTTL)
}

// Session returns a copy of the user's live dialogue instance.
func (u *DialogueUseCase) Session(userID string) (entities.Session, bool) {
	return u.sessions.peek(userID)
}

func (u *DialogueUseCase) dispatch(ctx context.Context, slot *sessionSlot, ev entities.Event, now time.Time) Reply {
	switch ev.Kind {
	case entities.EventStart:
		// The welcome menu is informational; a live dialogue survives it.
		return Reply{
			Outcome: OutcomeInfo,
			Intents: []entities.Intent{
				entities.SendPhoto(ev.UserID, u.cfg.WelcomePhotoRef, msgWelcome, menuFor(ev.Privileged)),
			},
		}
	case entities.EventCancel:
		return u.cancel(slot, ev)
	case entities.EventButton:
		switch ev.Action.(type) {
		case entities.AddProduct:
			return u.startAddProduct(slot, ev, now)
		case entities.BuyProduct:
			return u.startPurchase(ctx, slot, ev, now)
		case entities.DeleteProduct:
			return u.startDelete(ctx, slot, ev, now)
		case entities.ViewProducts:
			return u.viewProducts(ctx, ev)
		case entities.ViewOrders:
			return u.viewOrders(ctx, ev)
		case entities.CancelOrder:
			if slot.session != nil {
				return u.cancel(slot, ev)
			}
		}
	}

	s := slot.session
	if s == nil {
		return Reply{Outcome: OutcomeIgnored}
	}
	s.UpdatedAt = now

	switch s.Phase {
	case entities.PhaseName:
		return u.onName(slot, ev)
	case entities.PhaseQuantity:
		return u.onAdminQuantity(slot, ev)
	case entities.PhasePhoto:
		return u.onPhoto(ctx, slot, ev)
	case entities.PhaseSelectProduct:
		return u.onSelectProduct(ctx, slot, ev)
	case entities.PhaseSelectQuantity:
		return u.onSelectQuantity(ctx, slot, ev)
	case entities.PhaseConfirm:
		return u.onConfirm(ctx, slot, ev)
	case entities.PhaseDeleteSelect:
		return u.onDeleteSelect(ctx, slot, ev)
	}

	u.logger.Error("[dialogue][usecase] unknown phase", zap.String("phase", string(s.Phase)))
	return u.fail(slot, ev, msgFailed, errors.New("unknown dialogue phase"))
}

func (u *DialogueUseCase) begin(slot *sessionSlot, userID string, flow entities.Flow, phase entities.Phase, now time.Time) {
	if prev := slot.session; prev != nil {
		u.logger.Info("[dialogue][usecase] session abandoned",
			zap.String("user_id", userID),
			zap.String("session_id", prev.ID),
			zap.String("phase", string(prev.Phase)),
		)
	}
	slot.session = &entities.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Flow:      flow,
		Phase:     phase,
		UpdatedAt: now,
	}
	u.logger.Info("[dialogue][usecase] session started",
		zap.String("user_id", userID),
		zap.String("session_id", slot.session.ID),
		zap.String("flow", string(flow)),
	)
}

func (u *DialogueUseCase) cancel(slot *sessionSlot, ev entities.Event) Reply {
	slot.session = nil
	return Reply{
		Outcome: OutcomeCancelled,
		Intents: []entities.Intent{entities.SendText(ev.UserID, msgCancelled)},
	}
}

func (u *DialogueUseCase) refuse(ev entities.Event) Reply {
	return Reply{
		Outcome: OutcomeRefused,
		Intents: []entities.Intent{entities.Alert(ev.UserID, msgRefused)},
		Err:     ErrUnauthorized,
	}
}

// fail terminates the live instance with a notice.
func (u *DialogueUseCase) fail(slot *sessionSlot, ev entities.Event, text string, err error) Reply {
	slot.session = nil
	return Reply{
		Outcome: OutcomeFailed,
		Intents: []entities.Intent{entities.SendText(ev.UserID, text)},
		Err:     err,
	}
}

func reprompt(s *entities.Session, ev entities.Event, text string, err error) Reply {
	return Reply{
		Outcome: OutcomeReprompt,
		Phase:   s.Phase,
		Intents: []entities.Intent{entities.SendText(ev.UserID, text)},
		Err:     err,
	}
}

func advance(s *entities.Session, phase entities.Phase, intents ...entities.Intent) Reply {
	s.Phase = phase
	return Reply{Outcome: OutcomePrompt, Phase: phase, Intents: intents}
}

func wrongInput(s *entities.Session, ev entities.Event) Reply {
	return reprompt(s, ev, phasePrompt(s.Phase), ErrInvalidInput)
}

// --- stateless views ---

func (u *DialogueUseCase) viewProducts(ctx context.Context, ev entities.Event) Reply {
	products, err := u.catalog.ListProducts(ctx)
	if err != nil {
		u.logger.Error("[dialogue][usecase] list products failed", zap.Error(err))
		return Reply{Outcome: OutcomeFailed, Intents: []entities.Intent{entities.SendText(ev.UserID, msgFailed)}, Err: err}
	}
	if len(products) == 0 {
		return Reply{Outcome: OutcomeNoProducts, Intents: []entities.Intent{entities.EditLast(ev.UserID, msgNoProducts, menuFor(ev.Privileged))}}
	}

	album := make([]entities.AlbumItem, 0, len(products))
	for _, p := range products {
		album = append(album, entities.AlbumItem{PhotoRef: p.PhotoOr(u.cfg.DefaultPhotoRef), Caption: productCaption(p)})
	}
	return Reply{
		Outcome: OutcomeInfo,
		Intents: []entities.Intent{
			{Kind: entities.IntentSendPhotoAlbum, TargetID: ev.UserID, Album: album},
			{Kind: entities.IntentDeleteMessage, TargetID: ev.UserID, MessageRef: entities.MessageRefTrigger},
		},
	}
}

func (u *DialogueUseCase) viewOrders(ctx context.Context, ev entities.Event) Reply {
	if !ev.Privileged {
		return u.refuse(ev)
	}
	orders, err := u.orders.ListOrders(ctx)
	if err != nil {
		u.logger.Error("[dialogue][usecase] list orders failed", zap.Error(err))
		return Reply{Outcome: OutcomeFailed, Intents: []entities.Intent{entities.SendText(ev.UserID, msgFailed)}, Err: err}
	}
	text := msgNoOrders
	if len(orders) > 0 {
		text = ordersText(orders)
	}
	return Reply{Outcome: OutcomeInfo, Intents: []entities.Intent{entities.EditLast(ev.UserID, text, adminMenu())}}
}

// --- add-product flow ---

func (u *DialogueUseCase) startAddProduct(slot *sessionSlot, ev entities.Event, now time.Time) Reply {
	if !ev.Privileged {
		return u.refuse(ev)
	}
	u.begin(slot, ev.UserID, entities.FlowAddProduct, entities.PhaseName, now)
	return advance(slot.session, entities.PhaseName, entities.EditLast(ev.UserID, msgAskName, nil))
}

func (u *DialogueUseCase) onName(slot *sessionSlot, ev entities.Event) Reply {
	s := slot.session
	if !ev.Privileged {
		slot.session = nil
		return u.refuse(ev)
	}
	if ev.Kind != entities.EventText {
		return wrongInput(s, ev)
	}
	name := strings.TrimSpace(ev.Text)
	if name == "" {
		return reprompt(s, ev, msgEmptyName, ErrInvalidInput)
	}
	s.Draft.Name = name
	return advance(s, entities.PhaseQuantity, entities.SendText(ev.UserID, msgAskQuantity))
}

func (u *DialogueUseCase) onAdminQuantity(slot *sessionSlot, ev entities.Event) Reply {
	s := slot.session
	if !ev.Privileged {
		slot.session = nil
		return u.refuse(ev)
	}
	if ev.Kind != entities.EventText {
		return wrongInput(s, ev)
	}
	q, err := strconv.Atoi(strings.TrimSpace(ev.Text))
	if err != nil || q <= 0 {
		return reprompt(s, ev, msgBadQuantity, ErrInvalidInput)
	}
	s.Draft.Quantity = q
	return advance(s, entities.PhasePhoto, entities.SendText(ev.UserID, msgAskPhoto))
}

func (u *DialogueUseCase) onPhoto(ctx context.Context, slot *sessionSlot, ev entities.Event) Reply {
	s := slot.session
	if !ev.Privileged {
		slot.session = nil
		return u.refuse(ev)
	}
	if ev.Kind != entities.EventPhoto || strings.TrimSpace(ev.PhotoRef) == "" {
		return wrongInput(s, ev)
	}

	p, err := u.catalog.CreateProduct(ctx, s.Draft.Name, s.Draft.Quantity, ev.PhotoRef)
	if err != nil {
		return u.fail(slot, ev, msgFailed, err)
	}
	slot.session = nil
	return Reply{
		Outcome: OutcomeCompleted,
		Product: &p,
		Intents: []entities.Intent{
			entities.SendPhoto(ev.UserID, p.PhotoOr(u.cfg.DefaultPhotoRef), productAdded(p), adminMenu()),
		},
	}
}

// --- purchase flow ---

func (u *DialogueUseCase) startPurchase(ctx context.Context, slot *sessionSlot, ev entities.Event, now time.Time) Reply {
	products, err := u.catalog.ListProducts(ctx)
	if err != nil {
		u.logger.Error("[dialogue][usecase] list products failed", zap.Error(err))
		return u.fail(slot, ev, msgFailed, err)
	}
	if len(products) == 0 {
		slot.session = nil
		return Reply{
			Outcome: OutcomeNoProducts,
			Intents: []entities.Intent{entities.EditLast(ev.UserID, msgNoProducts, nil)},
		}
	}

	u.begin(slot, ev.UserID, entities.FlowPurchase, entities.PhaseSelectProduct, now)
	buttons := productButtons(products, func(id int64) entities.Action { return entities.SelectProduct{ProductID: id} })
	return advance(slot.session, entities.PhaseSelectProduct, entities.EditLast(ev.UserID, msgChooseProduct, buttons))
}

func (u *DialogueUseCase) onSelectProduct(ctx context.Context, slot *sessionSlot, ev entities.Event) Reply {
	s := slot.session
	sel, ok := ev.Action.(entities.SelectProduct)
	if ev.Kind != entities.EventButton || !ok {
		return wrongInput(s, ev)
	}

	p, err := u.catalog.GetProduct(ctx, sel.ProductID)
	switch {
	case errors.Is(err, ErrNotFound):
		return alertInPlace(s, ev, msgUnavailable, err)
	case err != nil:
		return u.fail(slot, ev, msgFailed, err)
	case !p.InStock():
		return alertInPlace(s, ev, msgUnavailable, ErrInsufficientStock)
	}

	s.Draft.ProductID = p.ID
	return advance(s, entities.PhaseSelectQuantity, entities.EditLast(ev.UserID, askQuantityFor(p), nil))
}

func alertInPlace(s *entities.Session, ev entities.Event, text string, err error) Reply {
	return Reply{
		Outcome: OutcomeReprompt,
		Phase:   s.Phase,
		Intents: []entities.Intent{entities.Alert(ev.UserID, text)},
		Err:     err,
	}
}

func (u *DialogueUseCase) onSelectQuantity(ctx context.Context, slot *sessionSlot, ev entities.Event) Reply {
	s := slot.session
	if ev.Kind != entities.EventText {
		return wrongInput(s, ev)
	}

	// Stock may have moved since the product was selected.
	p, err := u.catalog.GetProduct(ctx, s.Draft.ProductID)
	switch {
	case errors.Is(err, ErrNotFound):
		return u.fail(slot, ev, msgUnavailable, err)
	case err != nil:
		return u.fail(slot, ev, msgFailed, err)
	case !p.InStock():
		return u.fail(slot, ev, msgUnavailable, ErrInsufficientStock)
	}

	q, err := strconv.Atoi(strings.TrimSpace(ev.Text))
	if err != nil || q <= 0 || q > p.Quantity {
		return reprompt(s, ev, badQuantityFor(p), ErrInvalidInput)
	}

	s.Draft.Quantity = q
	return advance(s, entities.PhaseConfirm,
		entities.SendPhoto(ev.UserID, p.PhotoOr(u.cfg.DefaultPhotoRef), confirmCaption(p, q), confirmButtons()),
	)
}

func (u *DialogueUseCase) onConfirm(ctx context.Context, slot *sessionSlot, ev entities.Event) Reply {
	s := slot.session
	if _, ok := ev.Action.(entities.ConfirmOrder); ev.Kind != entities.EventButton || !ok {
		return wrongInput(s, ev)
	}

	// The instance is consumed before the transaction so a repeated confirm
	// finds nothing to act on.
	draft := s.Draft
	slot.session = nil

	order, err := u.inventory.Execute(ctx, draft.ProductID, draft.Quantity, ev.BuyerID())
	switch {
	case errors.Is(err, ErrInsufficientStock):
		return u.fail(slot, ev, msgOutOfStock, err)
	case errors.Is(err, ErrNotFound):
		return u.fail(slot, ev, msgUnavailable, err)
	case err != nil:
		u.logger.Error("[dialogue][usecase] order failed", zap.Error(err), zap.String("user_id", ev.UserID))
		return u.fail(slot, ev, msgOrderFailed, err)
	}

	product, err := u.catalog.GetProduct(ctx, order.ProductID)
	if err != nil {
		product = entities.Product{ID: order.ProductID, Name: order.ProductName}
	}

	intents := []entities.Intent{entities.EditLast(ev.UserID, BuildBuyerReceipt(order, product), nil)}
	intents = append(intents, OperatorNotices(order, u.cfg.Operators)...)

	return Reply{Outcome: OutcomeCompleted, Order: &order, Product: &product, Intents: intents}
}

// --- delete-product flow ---

func (u *DialogueUseCase) startDelete(ctx context.Context, slot *sessionSlot, ev entities.Event, now time.Time) Reply {
	if !ev.Privileged {
		return u.refuse(ev)
	}
	products, err := u.catalog.ListProducts(ctx)
	if err != nil {
		u.logger.Error("[dialogue][usecase] list products failed", zap.Error(err))
		return u.fail(slot, ev, msgFailed, err)
	}
	if len(products) == 0 {
		slot.session = nil
		return Reply{
			Outcome: OutcomeNoProducts,
			Intents: []entities.Intent{entities.EditLast(ev.UserID, msgNoProducts, adminMenu())},
		}
	}

	u.begin(slot, ev.UserID, entities.FlowDeleteProduct, entities.PhaseDeleteSelect, now)
	buttons := productButtons(products, func(id int64) entities.Action { return entities.RemoveProduct{ProductID: id} })
	return advance(slot.session, entities.PhaseDeleteSelect, entities.EditLast(ev.UserID, msgChooseDelete, buttons))
}

func (u *DialogueUseCase) onDeleteSelect(ctx context.Context, slot *sessionSlot, ev entities.Event) Reply {
	s := slot.session
	if !ev.Privileged {
		slot.session = nil
		return u.refuse(ev)
	}
	rm, ok := ev.Action.(entities.RemoveProduct)
	if ev.Kind != entities.EventButton || !ok {
		return wrongInput(s, ev)
	}

	err := u.catalog.DeleteProduct(ctx, rm.ProductID)
	switch {
	case errors.Is(err, ErrNotFound):
		return u.fail(slot, ev, msgUnavailable, err)
	case err != nil:
		return u.fail(slot, ev, msgFailed, err)
	}

	slot.session = nil
	return Reply{
		Outcome: OutcomeCompleted,
		Intents: []entities.Intent{entities.EditLast(ev.UserID, productDeleted(rm.ProductID), adminMenu())},
	}
}
