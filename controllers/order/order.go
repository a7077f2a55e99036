package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mibon4ik/toyota-sub000/models"
	"github.com/mibon4ik/toyota-sub000/store"
)

// -------- Request Structs --------

type CustomerInfoInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

type ShippingAddressInput struct {
	City      string `json:"city" binding:"required"`
	Street    string `json:"street" binding:"required"`
	House     string `json:"house" binding:"required"`
	Apartment string `json:"apartment"`
}

type OrderItemInput struct {
	PartID   string `json:"partId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderRequest struct {
	CustomerInfo    CustomerInfoInput    `json:"customerInfo" binding:"required"`
	ShippingAddress ShippingAddressInput `json:"shippingAddress" binding:"required"`
	Items           []OrderItemInput     `json:"items" binding:"required,min=1,dive"`
	PaymentMethod   string               `json:"paymentMethod" binding:"required"`
	Status          string               `json:"status"` // ignored; orders always start pending
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Map string to PaymentMethod
func mapPaymentMethod(method string) (models.PaymentMethod, error) {
	switch strings.ToLower(method) {
	case string(models.PaymentMethodOnline):
		return models.PaymentMethodOnline, nil
	case string(models.PaymentMethodCashOnDelivery):
		return models.PaymentMethodCashOnDelivery, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

// -------- Handlers --------

// PlaceOrderHandler creates an order from the checkout payload. Item prices
// come from the catalog, not the client, so a tampered cart cannot change
// what is charged.
func PlaceOrderHandler(catalog *store.CatalogStore, orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		paymentMethod, err := mapPaymentMethod(req.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var items []models.OrderItem
		for _, in := range req.Items {
			part, ok := catalog.GetByID(in.PartID)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Part does not exist: " + in.PartID})
				return
			}
			items = append(items, models.OrderItem{Part: part, Quantity: in.Quantity})
		}

		order, err := orders.Create(store.CreateOrderInput{
			CustomerInfo: models.CustomerInfo{
				FirstName: req.CustomerInfo.FirstName,
				LastName:  req.CustomerInfo.LastName,
				Phone:     req.CustomerInfo.Phone,
				Email:     req.CustomerInfo.Email,
			},
			ShippingAddress: models.ShippingAddress{
				City:      req.ShippingAddress.City,
				Street:    req.ShippingAddress.Street,
				House:     req.ShippingAddress.House,
				Apartment: req.ShippingAddress.Apartment,
			},
			Items:         items,
			PaymentMethod: paymentMethod,
		})
		if err != nil {
			if errors.Is(err, store.ErrEmptyOrder) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, order)
	}
}

// GetAllOrdersHandler returns every order, newest first.
func GetAllOrdersHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetOrderByIDHandler returns a single order.
func GetOrderByIDHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		order, err := orders.Get(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatusHandler moves an order to a new status.
func UpdateOrderStatusHandler(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := orders.UpdateStatus(orderID, newStatus)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			case errors.Is(err, store.ErrInvalidStatus):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
