package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name        TEXT NOT NULL,
//     category    TEXT NOT NULL,
//     price       NUMERIC NOT NULL,
//     stock       INT NOT NULL DEFAULT 0,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:text;not null" json:"name"`
	Category  string    `gorm:"column:category;type:text;not null" json:"category"`
	Price     float64   `gorm:"column:price;type:numeric;not null" json:"price"`
	Stock     int       `gorm:"column:stock;not null;default:0" json:"stock"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}
