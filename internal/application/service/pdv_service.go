package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/entity"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/enum"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/repository"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/schema"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/backup"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/migration"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/storage"
	"github.com/leonardodavinci2049/point-of-sale-v2/pkg/apperror"
)

// ModalsState tracks which UI modals are open. The flags carry no
// business invariant; they live here so every panel observes one source
// of truth.
type ModalsState struct {
	SearchCustomer bool `json:"searchCustomer"`
	AddCustomer    bool `json:"addCustomer"`
	SearchProduct  bool `json:"searchProduct"`
	Discount       bool `json:"discount"`
	Budgets        bool `json:"budgets"`
	PendingSales   bool `json:"pendingSales"`
}

func (m *ModalsState) set(name string, open bool) bool {
	switch name {
	case "searchCustomer":
		m.SearchCustomer = open
	case "addCustomer":
		m.AddCustomer = open
	case "searchProduct":
		m.SearchProduct = open
	case "discount":
		m.Discount = open
	case "budgets":
		m.Budgets = open
	case "pendingSales":
		m.PendingSales = open
	default:
		return false
	}
	return true
}

// StateView is the read model handed to the presentation layer: the
// working sale plus the derived totals, computed at the moment of
// observation.
type StateView struct {
	CartItems        []entity.CartItem `json:"cartItems"`
	SelectedCustomer *entity.Customer  `json:"selectedCustomer"`
	Discount         entity.Discount   `json:"discount"`
	Modals           ModalsState       `json:"modals"`
	IsSidebarOpen    bool              `json:"isSidebarOpen"`
	IsMobile         bool              `json:"isMobile"`
	IsInitialized    bool              `json:"isInitialized"`
	Subtotal         float64           `json:"subtotal"`
	DiscountAmount   float64           `json:"discountAmount"`
	Shipping         float64           `json:"shipping"`
	Total            float64           `json:"total"`
}

// lastSale is the summary written to the last-sale slot when a sale is
// finalized.
type lastSale struct {
	Customer    *entity.Customer  `json:"customer"`
	Items       []entity.CartItem `json:"items"`
	Subtotal    float64           `json:"subtotal"`
	Discount    entity.Discount   `json:"discount"`
	Total       float64           `json:"total"`
	FinalizedAt time.Time         `json:"finalizedAt"`
}

// PDVService is the in-memory source of truth for the working sale. It
// owns cart, customer and discount state exclusively; the persistent
// store is a durable mirror updated on every mutation and read once
// during Hydrate.
type PDVService struct {
	mu        sync.Mutex
	store     storage.Store
	documents *migration.Manager[schema.State]
	backups   *backup.Manager
	products  repository.ProductRepository
	customers repository.CustomerRepository
	logger    *zap.Logger

	cartItems        []entity.CartItem
	selectedCustomer *entity.Customer
	discount         entity.Discount
	modals           ModalsState
	sidebarOpen      bool
	mobile           bool
	initialized      bool
	totalSales       int
}

func NewPDVService(
	store storage.Store,
	documents *migration.Manager[schema.State],
	backups *backup.Manager,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	logger *zap.Logger,
) *PDVService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PDVService{
		store:     store,
		documents: documents,
		backups:   backups,
		products:  products,
		customers: customers,
		logger:    logger,
		cartItems: []entity.CartItem{},
		discount:  entity.NoDiscount(),
	}
}

// Hydrate loads the persisted working sale through the migration engine,
// applying the defensive sanitizers regardless of the stored version.
// It runs at most once: repeated calls are no-ops, and until it has run
// the mutation auto-save stays disabled so defaults never overwrite a
// persisted sale.
func (s *PDVService) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return
	}

	doc := s.documents.Load(storage.KeyWorkingSale)
	state := schema.SanitizeState(doc.Data)

	s.cartItems = state.CartItems
	s.selectedCustomer = state.SelectedCustomer
	s.discount = state.Discount
	if state.Metadata != nil {
		s.totalSales = state.Metadata.TotalSales
	}
	s.initialized = true

	s.logger.Info("working sale hydrated",
		zap.Int("documentVersion", doc.Version),
		zap.Int("cartItems", len(s.cartItems)))
}

// persist mirrors the working sale into the store. Callers must hold the
// lock. Saves are gated on hydration so a not-yet-loaded container can
// never clobber persisted state.
func (s *PDVService) persist() {
	if !s.initialized {
		return
	}
	s.documents.Save(storage.KeyWorkingSale, schema.State{
		CartItems:        s.cartItems,
		SelectedCustomer: s.selectedCustomer,
		Discount:         s.discount,
		Metadata: &schema.Metadata{
			LastUpdated: time.Now(),
			TotalSales:  s.totalSales,
		},
	})
}

// AddItem puts one unit of the product into the cart: an existing line
// has its quantity incremented, a new line is seeded with quantity 1 and
// the product's first listed variant.
func (s *PDVService) AddItem(ctx context.Context, productID string) (*entity.CartItem, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cartItems {
		if s.cartItems[i].ProductID == productID {
			s.cartItems[i].Quantity++
			s.cartItems[i].Recalculate()
			s.persist()
			item := s.cartItems[i]
			return &item, nil
		}
	}

	item := entity.NewCartItem(product)
	s.cartItems = append(s.cartItems, item)
	s.persist()
	return &item, nil
}

// UpdateQuantity sets the quantity of a cart line, removing the line
// when the new quantity is zero or below. The cart never holds a line
// with a non-positive quantity.
func (s *PDVService) UpdateQuantity(productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cartItems {
		if s.cartItems[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			s.cartItems = append(s.cartItems[:i], s.cartItems[i+1:]...)
		} else {
			s.cartItems[i].Quantity = quantity
			s.cartItems[i].Recalculate()
		}
		s.persist()
		return nil
	}
	return apperror.NewNotFoundError("Cart item")
}

// RemoveItem deletes the line unconditionally. Removing an absent line
// is a no-op.
func (s *PDVService) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cartItems {
		if s.cartItems[i].ProductID == productID {
			s.cartItems = append(s.cartItems[:i], s.cartItems[i+1:]...)
			s.persist()
			return
		}
	}
}

// ClearCart resets cart, customer and discount together; a sale reset is
// atomic across all three.
func (s *PDVService) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetSaleLocked()
	s.persist()
}

func (s *PDVService) resetSaleLocked() {
	s.cartItems = []entity.CartItem{}
	s.selectedCustomer = nil
	s.discount = entity.NoDiscount()
}

// SetCustomer selects the customer for the working sale.
func (s *PDVService) SetCustomer(ctx context.Context, customerID string) error {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCustomer = customer
	s.persist()
	return nil
}

// ClearCustomer deselects the current customer.
func (s *PDVService) ClearCustomer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCustomer = nil
	s.persist()
}

// SetDiscount applies a discount to the working sale. Upper-bound
// validation (percentage <= 100, fixed <= subtotal) lives at the UI
// boundary; the container trusts its caller here.
func (s *PDVService) SetDiscount(discountType enum.DiscountType, value float64) error {
	if discountType != enum.DiscountTypePercentage && discountType != enum.DiscountTypeFixed {
		return apperror.NewBadRequestError("Discount type must be percentage or fixed")
	}
	if value < 0 {
		return apperror.NewBadRequestError("Discount value cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.discount = entity.Discount{Type: discountType, Value: value}
	s.persist()
	return nil
}

// ClearDiscount resets the discount.
func (s *PDVService) ClearDiscount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discount = entity.NoDiscount()
	s.persist()
}

// Subtotal is the sum of the cart's line subtotals.
func (s *PDVService) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

func (s *PDVService) subtotalLocked() float64 {
	total := 0.0
	for _, item := range s.cartItems {
		total += item.Subtotal
	}
	return total
}

// DiscountAmount is the currency amount the current discount removes
// from the subtotal.
func (s *PDVService) DiscountAmount() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discount.AmountFor(s.subtotalLocked())
}

// Total is subtotal minus discount. Shipping is a reserved term that is
// always zero for now.
func (s *PDVService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	subtotal := s.subtotalLocked()
	return subtotal - s.discount.AmountFor(subtotal)
}

// OpenModal marks the named modal as open.
func (s *PDVService) OpenModal(name string) error {
	return s.setModal(name, true)
}

// CloseModal marks the named modal as closed.
func (s *PDVService) CloseModal(name string) error {
	return s.setModal(name, false)
}

func (s *PDVService) setModal(name string, open bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.modals.set(name, open) {
		return apperror.NewNotFoundError("Modal")
	}
	return nil
}

// CloseAllModals resets every modal flag.
func (s *PDVService) CloseAllModals() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modals = ModalsState{}
}

// SetSidebarOpen sets the sidebar flag.
func (s *PDVService) SetSidebarOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = open
}

// ToggleSidebar flips the sidebar flag.
func (s *PDVService) ToggleSidebar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = !s.sidebarOpen
}

// SetMobile records whether the UI is below the mobile breakpoint.
func (s *PDVService) SetMobile(mobile bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mobile = mobile
}

// FinalizeSale completes the working sale. It refuses an empty cart and
// a missing customer, leaving all state untouched. On success it takes a
// best-effort backup of the persisted sale (a backup failure is logged,
// never blocks the sale), records the last-sale summary, and clears
// cart, customer, discount and modals together.
func (s *PDVService) FinalizeSale() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cartItems) == 0 {
		return apperror.ErrEmptyCart
	}
	if s.selectedCustomer == nil {
		return apperror.ErrNoCustomer
	}

	if _, ok := s.backups.Create(backup.Config{
		Keys:       []string{storage.KeyWorkingSale},
		Name:       "pdv_cart",
		MaxBackups: 5,
	}, "automatic backup before finalizing sale"); !ok {
		s.logger.Warn("pre-finalize backup failed, finalizing anyway")
	}

	subtotal := s.subtotalLocked()
	s.store.Set(storage.KeyLastSale, lastSale{
		Customer:    s.selectedCustomer,
		Items:       s.cartItems,
		Subtotal:    subtotal,
		Discount:    s.discount,
		Total:       subtotal - s.discount.AmountFor(subtotal),
		FinalizedAt: time.Now(),
	})

	s.totalSales++
	s.resetSaleLocked()
	s.modals = ModalsState{}
	s.persist()

	s.logger.Info("sale finalized", zap.Int("totalSales", s.totalSales))
	return nil
}

// Snapshot returns a copy of the working sale with derived totals.
func (s *PDVService) Snapshot() StateView {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]entity.CartItem, len(s.cartItems))
	copy(items, s.cartItems)

	subtotal := s.subtotalLocked()
	discountAmount := s.discount.AmountFor(subtotal)

	return StateView{
		CartItems:        items,
		SelectedCustomer: s.selectedCustomer,
		Discount:         s.discount,
		Modals:           s.modals,
		IsSidebarOpen:    s.sidebarOpen,
		IsMobile:         s.mobile,
		IsInitialized:    s.initialized,
		Subtotal:         subtotal,
		DiscountAmount:   discountAmount,
		Shipping:         0,
		Total:            subtotal - discountAmount,
	}
}

// RestoreWorkingSale replaces the working sale wholesale, used when a
// saved sale is loaded back into the terminal.
func (s *PDVService) RestoreWorkingSale(items []entity.CartItem, customer *entity.Customer, discount entity.Discount) {
	s.mu.Lock()
	defer s.mu.Unlock()

	restored := make([]entity.CartItem, len(items))
	copy(restored, items)
	for i := range restored {
		restored[i].Recalculate()
	}

	s.cartItems = restored
	s.selectedCustomer = customer
	s.discount = discount
	s.persist()
}
