package domain

import "time"

// ExchangeRate is one admin-entered USD to local currency rate. The newest
// row is the active rate; older rows are kept for reporting.
type ExchangeRate struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Rate      float64   `json:"rate" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
}
