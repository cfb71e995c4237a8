package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"wondershop/internal/adapter/persistence/memory"
	"wondershop/internal/domain/entities"
	mock_interfaces "wondershop/internal/usecase/interfaces/mocks"

	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestInventory(store *mock_interfaces.MockIInventoryStore) *InventoryUseCase {
	return NewInventoryUseCase(store, zap.NewNop(), noop.NewTracerProvider().Tracer("test"))
}

func TestInventoryUseCase_Execute(t *testing.T) {
	t.Run("invalid quantity", func(t *testing.T) {
		uc := newTestInventory(nil)
		_, err := uc.Execute(context.Background(), 1, 0, "bob")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("product not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIInventoryStore(ctrl)
		uc := newTestInventory(store)

		store.EXPECT().Commit(gomock.Any(), int64(9), 1, gomock.Any()).
			Return(entities.Order{}, entities.Product{}, fmt.Errorf("%w: product 9", entities.ErrNotFound))

		_, err := uc.Execute(context.Background(), 9, 1, "bob")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if errors.Is(err, ErrLedgerUnavailable) {
			t.Fatalf("rejection must not look like an internal fault: %v", err)
		}
	})

	t.Run("insufficient stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIInventoryStore(ctrl)
		uc := newTestInventory(store)

		store.EXPECT().Commit(gomock.Any(), int64(1), 5, gomock.Any()).
			Return(entities.Order{}, entities.Product{}, entities.ErrInsufficientStock)

		_, err := uc.Execute(context.Background(), 1, 5, "bob")
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("success passes buyer and timestamp to the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIInventoryStore(ctrl)
		uc := newTestInventory(store)

		store.EXPECT().Commit(gomock.Any(), int64(1), 3, gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, id int64, q int, o entities.Order) (entities.Order, entities.Product, error) {
				if o.BuyerID != "bob" {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.CreatedAt.IsZero() {
					t.Fatalf("expected timestamp")
				}
				o.ID, o.ProductID, o.ProductName, o.Quantity = 1, id, "Кружка", q
				return o, entities.Product{ID: 1, Name: "Кружка", Quantity: 2}, nil
			},
		)

		order, err := uc.Execute(context.Background(), 1, 3, "bob")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.ID != 1 || order.ProductName != "Кружка" {
			t.Fatalf("unexpected order: %+v", order)
		}
	})

	t.Run("store failure is an internal fault", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIInventoryStore(ctrl)
		uc := newTestInventory(store)

		store.EXPECT().Commit(gomock.Any(), int64(1), 2, gomock.Any()).
			Return(entities.Order{}, entities.Product{}, errors.New("ledger down"))

		_, err := uc.Execute(context.Background(), 1, 2, "bob")
		if !errors.Is(err, ErrLedgerUnavailable) {
			t.Fatalf("expected ErrLedgerUnavailable, got %v", err)
		}
		if errors.Is(err, ErrInsufficientStock) || errors.Is(err, ErrNotFound) {
			t.Fatalf("internal fault must not look like a user-facing kind: %v", err)
		}
	})
}

// stallingLedger blocks the first Append until released and then fails it.
// Later appends go to the wrapped ledger.
type stallingLedger struct {
	*memory.OrderLedger
	entered chan struct{}
	release chan struct{}
	calls   atomic.Int32
}

func (l *stallingLedger) Append(ctx context.Context, o entities.Order) (entities.Order, error) {
	if l.calls.Add(1) == 1 {
		close(l.entered)
		<-l.release
		return entities.Order{}, errors.New("ledger down")
	}
	return l.OrderLedger.Append(ctx, o)
}

func TestInventoryUseCase_LedgerFailureIsInvisibleToOtherBuyers(t *testing.T) {
	ctx := context.Background()
	catalog := memory.NewCatalogRepository(memory.IDMonotonic)
	if _, err := catalog.Create(ctx, entities.Product{Name: "a", Quantity: 2}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	ledger := &stallingLedger{
		OrderLedger: memory.NewOrderLedger(),
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
	uc := NewInventoryUseCase(memory.NewInventoryStore(catalog, ledger), zap.NewNop(), noop.NewTracerProvider().Tracer("test"))

	firstErr := make(chan error, 1)
	go func() {
		_, err := uc.Execute(ctx, 1, 2, "first")
		firstErr <- err
	}()
	<-ledger.entered

	var lowest atomic.Int64
	lowest.Store(2)
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			p, _ := catalog.GetByID(ctx, 1)
			if int64(p.Quantity) < lowest.Load() {
				lowest.Store(int64(p.Quantity))
			}
		}
	}()

	var secondErr error
	var second entities.Order
	secondDone := make(chan struct{})
	go func() {
		defer close(secondDone)
		second, secondErr = uc.Execute(ctx, 1, 1, "second")
	}()

	time.Sleep(20 * time.Millisecond)
	close(ledger.release)

	if err := <-firstErr; !errors.Is(err, ErrLedgerUnavailable) {
		t.Fatalf("expected ErrLedgerUnavailable for the stalled buyer, got %v", err)
	}
	<-secondDone
	close(stop)
	wg.Wait()

	if secondErr != nil {
		t.Fatalf("second buyer must not see the in-flight purchase, got %v", secondErr)
	}
	if second.ID != 1 {
		t.Fatalf("expected order id 1, got %d", second.ID)
	}
	if lowest.Load() < 1 {
		t.Fatalf("a reader saw quantity %d while the failing purchase was in flight", lowest.Load())
	}
	p, _ := catalog.GetByID(ctx, 1)
	if p.Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", p.Quantity)
	}
	orders, _ := ledger.List(ctx)
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
}

func TestInventoryUseCase_ConcurrentBuyers(t *testing.T) {
	newStores := func(t *testing.T, stock int) (*memory.CatalogRepository, *memory.OrderLedger, *InventoryUseCase) {
		t.Helper()
		catalog := memory.NewCatalogRepository(memory.IDMonotonic)
		ledger := memory.NewOrderLedger()
		if _, err := catalog.Create(context.Background(), entities.Product{Name: "a", Quantity: stock}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		return catalog, ledger, NewInventoryUseCase(memory.NewInventoryStore(catalog, ledger), zap.NewNop(), noop.NewTracerProvider().Tracer("test"))
	}

	t.Run("two buyers race for the last two units", func(t *testing.T) {
		catalog, ledger, uc := newStores(t, 2)

		errs := make([]error, 2)
		var wg sync.WaitGroup
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = uc.Execute(context.Background(), 1, 2, fmt.Sprintf("buyer-%d", i))
			}(i)
		}
		wg.Wait()

		ok, short := 0, 0
		for _, err := range errs {
			switch {
			case err == nil:
				ok++
			case errors.Is(err, ErrInsufficientStock):
				short++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if ok != 1 || short != 1 {
			t.Fatalf("expected one success and one insufficient stock, got %d/%d", ok, short)
		}

		p, _ := catalog.GetByID(context.Background(), 1)
		if p.Quantity != 0 {
			t.Fatalf("expected quantity 0, got %d", p.Quantity)
		}
		orders, _ := ledger.List(context.Background())
		if len(orders) != 1 {
			t.Fatalf("expected 1 order, got %d", len(orders))
		}
	})

	t.Run("many buyers never oversell and ids stay gap-free", func(t *testing.T) {
		const stock = 40
		catalog, ledger, uc := newStores(t, stock)

		var wg sync.WaitGroup
		for i := 0; i < 120; i++ {
			wg.Add(1)
			go func(q int) {
				defer wg.Done()
				_, _ = uc.Execute(context.Background(), 1, q, "buyer")
			}(i%3 + 1)
		}
		wg.Wait()

		orders, _ := ledger.List(context.Background())
		sold := 0
		for i, o := range orders {
			sold += o.Quantity
			if o.ID != int64(i+1) {
				t.Fatalf("order %d has id %d", i, o.ID)
			}
		}
		p, _ := catalog.GetByID(context.Background(), 1)
		if sold > stock {
			t.Fatalf("oversold: %d > %d", sold, stock)
		}
		if p.Quantity != stock-sold {
			t.Fatalf("stock drift: quantity %d, sold %d", p.Quantity, sold)
		}
	})
}
