package domain

import (
	"time"
)

// CREATE TABLE public.customers (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     first_name  TEXT NOT NULL,
//     last_name   TEXT NOT NULL,
//     email       TEXT NOT NULL UNIQUE,
//     joined_at   TIMESTAMPTZ DEFAULT NOW()
// );

type Customer struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string    `gorm:"column:first_name;type:text;not null" json:"first_name"`
	LastName  string    `gorm:"column:last_name;type:text;not null" json:"last_name"`
	Email     string    `gorm:"column:email;type:text;unique;not null" json:"email"`
	JoinedAt  time.Time `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`

	Orders []Order `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
}

func (Customer) TableName() string {
	return "customers"
}
