package services

import (
	"errors"

	"github.com/dmelo/catalog/app/models"
	"github.com/dmelo/catalog/app/repositories"
	"github.com/dmelo/catalog/pkg/apperr"
	"github.com/dmelo/catalog/pkg/collection"
	"github.com/dmelo/catalog/pkg/event"
	"github.com/dmelo/catalog/pkg/logger"
	"github.com/dmelo/catalog/pkg/rbac"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Event names fired on order lifecycle transitions. Listeners are
// registered at server startup.
const (
	EventOrderCreated   = "order.created"
	EventOrderCancelled = "order.cancelled"
)

// OrderItemInput is one requested line: which product, how many.
type OrderItemInput struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// OrderInput is the create-order request body.
type OrderInput struct {
	Items []OrderItemInput `json:"items"`
}

// OrderItemView is a line item projection with its derived total.
type OrderItemView struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// OrderView is the order projection returned to callers.
type OrderView struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Cancelled bool            `json:"cancelled"`
	CreatedAt string          `json:"created_at"`
	Items     []OrderItemView `json:"items"`
	Total     decimal.Decimal `json:"total"`
}

// OrderService creates orders as a single unit of work and guards reads and
// cancellation with ownership rules.
type OrderService struct {
	db     *gorm.DB
	orders *repositories.OrderRepository
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		db:     db,
		orders: repositories.NewOrderRepository(db),
	}
}

// Create assembles and persists an order atomically. Every requested product
// must exist and be active; any miss fails the whole operation and nothing is
// written. Unit prices are snapshotted from the products at this moment and
// never recomputed. Stock is informational and is not decremented.
func (s *OrderService) Create(userID uuid.UUID, input OrderInput) (OrderView, error) {
	if len(input.Items) == 0 {
		return OrderView{}, apperr.Validation("Order must contain at least one item", nil)
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return OrderView{}, apperr.Validation("Validation failed", map[string]string{
				"quantity": "Quantity must be at least 1",
			})
		}
	}

	order := models.Order{
		ID:     uuid.New(),
		UserID: userID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		products := repositories.NewProductRepository(tx)

		for _, item := range input.Items {
			product, err := products.FindActiveByID(item.ProductID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Product not found or inactive: " + item.ProductID.String())
			}
			if err != nil {
				return apperr.Internal(err)
			}

			order.Items = append(order.Items, models.OrderItem{
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
			})
		}

		// Order row plus all line items commit together or not at all.
		return tx.Create(&order).Error
	})
	if err != nil {
		if _, ok := apperr.As(err); ok {
			return OrderView{}, err
		}
		return OrderView{}, apperr.Internal(err)
	}

	logger.Info("order created", "order_id", order.ID, "items", len(order.Items))
	event.Fire(EventOrderCreated, order.ID)

	stored, err := s.orders.FindByID(order.ID)
	if err != nil {
		return OrderView{}, apperr.Internal(err)
	}
	return toOrderView(stored), nil
}

// Get returns an order to its owner or to a privileged reader.
func (s *OrderService) Get(userID uuid.UUID, role string, orderID uuid.UUID) (OrderView, error) {
	order, err := s.findByID(orderID)
	if err != nil {
		return OrderView{}, err
	}

	if order.UserID != userID && !rbac.Can(role, rbac.ActionOrderReadAny) {
		return OrderView{}, apperr.Forbidden("Access denied")
	}
	return toOrderView(order), nil
}

// Cancel flips the one-way cancelled flag. Owner or admin only. No item
// restoration or refund logic exists here.
func (s *OrderService) Cancel(userID uuid.UUID, role string, orderID uuid.UUID) error {
	order, err := s.findByID(orderID)
	if err != nil {
		return err
	}

	if order.UserID != userID && !rbac.Can(role, rbac.ActionOrderCancel) {
		return apperr.Forbidden("Access denied")
	}

	order.Cancelled = true
	if err := s.orders.Save(&order); err != nil {
		return apperr.Internal(err)
	}

	logger.Info("order cancelled", "order_id", orderID)
	event.Fire(EventOrderCancelled, orderID)
	return nil
}

// ListMine returns the caller's orders.
func (s *OrderService) ListMine(userID uuid.UUID) ([]OrderView, error) {
	orders, err := s.orders.FindByUser(userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return collection.Map(orders, toOrderView), nil
}

// ListAll returns every order; privileged readers only.
func (s *OrderService) ListAll(role string) ([]OrderView, error) {
	if !rbac.Can(role, rbac.ActionOrderListAll) {
		return nil, apperr.Forbidden("Not allowed to list all orders")
	}

	orders, err := s.orders.FindAll()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return collection.Map(orders, toOrderView), nil
}

func (s *OrderService) findByID(orderID uuid.UUID) (models.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, apperr.NotFound("Order not found")
	}
	if err != nil {
		return models.Order{}, apperr.Internal(err)
	}
	return order, nil
}

func toOrderView(order models.Order) OrderView {
	total := decimal.Zero
	items := collection.Map(order.Items, func(item models.OrderItem) OrderItemView {
		return OrderItemView{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal(),
		}
	})
	for _, item := range order.Items {
		total = total.Add(item.LineTotal())
	}

	return OrderView{
		ID:        order.ID,
		UserID:    order.UserID,
		Cancelled: order.Cancelled,
		CreatedAt: order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Items:     items,
		Total:     total,
	}
}
