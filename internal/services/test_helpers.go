package services

import (
	"backoffice-service/internal/domain"
)

func CreateMockOrder(id uint64, status domain.OrderStatus, items ...domain.OrderItem) *domain.Order {
	return &domain.Order{
		ID:     id,
		Status: status,
		Items:  items,
	}
}

func CreateMockItem(id, productID uint64, quantity int, price float64) domain.OrderItem {
	return domain.OrderItem{
		ID:         id,
		ProductID:  productID,
		Quantity:   quantity,
		Price:      price,
		TotalPrice: price * float64(quantity),
	}
}

func CreateMockProduct(id uint64, name string, price float64, stock int64) domain.Product {
	return domain.Product{
		ID:    id,
		Name:  name,
		Price: price,
		Stock: stock,
	}
}

const (
	TestOrderID   = uint64(1)
	TestProductID = uint64(10)
)
