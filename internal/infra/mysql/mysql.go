package mysql

import (
	"backoffice-service/internal/domain"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// NewMySQL opens the backoffice database and migrates the exchange-rate
// table. Orders, items and invoices live in the backend services; the only
// state this service owns is admin-entered exchange rates.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&domain.ExchangeRate{}); err != nil {
		return nil, err
	}

	return db, nil
}
