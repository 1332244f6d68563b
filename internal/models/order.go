package models

// Order is a cart while open. A user has at most one open order.
type Order struct {
	Base
	UserID        uint           `gorm:"not null;index;uniqueIndex:ux_orders_open_user,where:is_closed = false" json:"user_id"`
	IsClosed      bool           `gorm:"not null;default:false" json:"is_closed"`
	User          *User          `json:"-"`
	OrderProducts []OrderProduct `json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderProduct is a line item. Price is captured when the line is added.
type OrderProduct struct {
	Base
	OrderID   uint     `gorm:"not null;index" json:"order_id"`
	ProductID uint     `gorm:"not null;index" json:"product_id"`
	Price     float64  `gorm:"not null" json:"price"`
	Quantity  int      `gorm:"not null;check:chk_order_products_quantity,quantity > 0" json:"quantity"`
	Order     *Order   `json:"-"`
	Product   *Product `json:"product,omitempty"`
}

func (OrderProduct) TableName() string {
	return "order_products"
}

func (l *OrderProduct) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// All lists every model in dependency order for migration.
func All() []any {
	return []any{&User{}, &Product{}, &RefreshToken{}, &Order{}, &OrderProduct{}}
}
