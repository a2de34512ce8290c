package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jatin-yadav05/hospital-management/internal/domain"
	"github.com/jatin-yadav05/hospital-management/internal/orders"
)

type OrderReader interface {
	GetOrderByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListOrdersByUserID(ctx context.Context, userID string) ([]*domain.Order, error)
}

type OrdersHandler struct {
	orders  OrderReader
	timeout time.Duration
}

func NewOrdersHandler(reader OrderReader, timeout time.Duration) *OrdersHandler {
	return &OrdersHandler{
		orders:  reader,
		timeout: timeout,
	}
}

type ShippingDTO struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Phone    string `json:"phone"`
}

type OrderResponseDTO struct {
	ID          string             `json:"id"`
	TotalAmount float64            `json:"total_amount"`
	Status      string             `json:"status"`
	Items       []domain.OrderItem `json:"items"`
	Shipping    ShippingDTO        `json:"shipping"`
	CreatedAt   time.Time          `json:"created_at"`
}

func convertOrder(o *domain.Order) OrderResponseDTO {
	items := o.Items
	if items == nil {
		items = []domain.OrderItem{}
	}
	return OrderResponseDTO{
		ID:          o.ID.String(),
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
		Items:       items,
		Shipping: ShippingDTO{
			FullName: o.Shipping.FullName,
			Email:    o.Shipping.Email,
			Address:  o.Shipping.Address,
			City:     o.Shipping.City,
			State:    o.Shipping.State,
			ZipCode:  o.Shipping.ZipCode,
			Phone:    o.Shipping.Phone,
		},
		CreatedAt: o.CreatedAt,
	}
}

// GET /api/v1/orders
func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	userOrders, err := h.orders.ListOrdersByUserID(ctx, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	dtos := make([]OrderResponseDTO, 0, len(userOrders))
	for _, o := range userOrders {
		dtos = append(dtos, convertOrder(o))
	}

	respondJSON(w, http.StatusOK, dtos)
}

// GET /api/v1/orders/{order_id}
func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	orderID, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id must be a valid UUID")
		return
	}

	order, err := h.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// A foreign order is indistinguishable from a missing one.
	if order.UserID != userID {
		handleServiceError(w, orders.ErrOrderNotFound)
		return
	}

	respondJSON(w, http.StatusOK, convertOrder(order))
}
