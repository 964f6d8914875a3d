package domain

// CREATE TABLE public.order_items (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     order_id    BIGINT NOT NULL REFERENCES orders(id),
//     product_id  BIGINT NOT NULL REFERENCES products(id),
//     quantity    INT NOT NULL,
//     unit_price  NUMERIC NOT NULL
// );

// UnitPrice is captured from the product at order time and never re-read,
// so later product price changes do not rewrite order history.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"column:order_id;not null" json:"order_id"`
	ProductID uint64  `gorm:"column:product_id;not null" json:"product_id"`
	Quantity  int     `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice float64 `gorm:"column:unit_price;type:numeric;not null" json:"unit_price"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
