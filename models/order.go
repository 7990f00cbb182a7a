package models

import "time"

type Order struct {
	ID            int       `json:"id"`
	CustomerName  string    `json:"customer_name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	CNIC          string    `json:"cnic"`
	Address       string    `json:"address"`
	ProductID     int       `json:"product_id"`
	ProductName   string    `json:"product_name"`
	Quantity      int       `json:"quantity"`
	TotalPrice    float64   `json:"total_price"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// OrderCreate is the checkout payload. Any status sent by the client is
// ignored; new orders always start out pending.
type OrderCreate struct {
	CustomerName  string  `json:"customer_name" validate:"required"`
	Phone         string  `json:"phone" validate:"required"`
	Email         string  `json:"email" validate:"required"`
	CNIC          string  `json:"cnic" validate:"required"`
	Address       string  `json:"address" validate:"required"`
	ProductID     int     `json:"product_id" validate:"required"`
	ProductName   string  `json:"product_name" validate:"required"`
	Quantity      int     `json:"quantity" validate:"gte=0"`
	TotalPrice    float64 `json:"total_price" validate:"gte=0"`
	PaymentMethod string  `json:"payment_method"`
}

func (o OrderCreate) Order() Order {
	quantity := o.Quantity
	if quantity == 0 {
		quantity = 1
	}
	payment := o.PaymentMethod
	if payment == "" {
		payment = "COD"
	}
	return Order{
		CustomerName:  o.CustomerName,
		Phone:         o.Phone,
		Email:         o.Email,
		CNIC:          o.CNIC,
		Address:       o.Address,
		ProductID:     o.ProductID,
		ProductName:   o.ProductName,
		Quantity:      quantity,
		TotalPrice:    o.TotalPrice,
		PaymentMethod: payment,
		Status:        "pending",
	}
}

type OrderStatusUpdate struct {
	Status string `json:"status" validate:"required"`
}

// AdminStats backs the admin dashboard. "Completed" counts orders whose
// status is the literal "completed".
type AdminStats struct {
	CompletedToday     int     `json:"completed_today"`
	CompletedThisWeek  int     `json:"completed_this_week"`
	CompletedThisMonth int     `json:"completed_this_month"`
	SalesToday         float64 `json:"sales_today"`
	SalesThisWeek      float64 `json:"sales_this_week"`
	SalesThisMonth     float64 `json:"sales_this_month"`
	TotalOrders        int     `json:"total_orders"`
	PendingOrders      int     `json:"pending_orders"`
}
