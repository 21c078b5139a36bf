package service

import "storefront/internal/domain/entity"

// ReceiptData is the fully populated view a receipt is rendered from.
// Address is the owner's default shipping address and may be nil.
type ReceiptData struct {
	Order   *entity.Order
	User    *entity.User
	Address *entity.Address
}

// ReceiptRenderer turns order data into a downloadable document. It is a pure
// formatting function with no state of its own.
type ReceiptRenderer interface {
	// Render produces the document bytes for a receipt.
	Render(data *ReceiptData) ([]byte, error)
}
