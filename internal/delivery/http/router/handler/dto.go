package handler

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response models returned by the API. Entities are mapped explicitly so
// internal fields like password hashes can never leak into a payload.

// UserResponse is the public view of a user account.
type UserResponse struct {
	ID        uuid.UUID          `json:"id"`
	Email     string             `json:"email"`
	Role      string             `json:"role"`
	Addresses []*AddressResponse `json:"addresses,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

// AddressResponse is the public view of an address.
type AddressResponse struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	PostalCode string    `json:"postalCode"`
	Country    string    `json:"country"`
	IsDefault  bool      `json:"isDefault"`
}

// CategoryResponse is the public view of a category.
type CategoryResponse struct {
	ID       uuid.UUID           `json:"id"`
	Name     string              `json:"name"`
	Slug     string              `json:"slug"`
	ParentID *uuid.UUID          `json:"parentId,omitempty"`
	Children []*CategoryResponse `json:"children,omitempty"`
}

// AttributeResponse is the public view of an attribute with its values.
type AttributeResponse struct {
	ID     uuid.UUID                 `json:"id"`
	Name   string                    `json:"name"`
	Values []*AttributeValueResponse `json:"values,omitempty"`
}

// AttributeValueResponse is the public view of an attribute value.
type AttributeValueResponse struct {
	ID          uuid.UUID `json:"id"`
	AttributeID uuid.UUID `json:"attributeId"`
	Value       string    `json:"value"`
	Attribute   string    `json:"attribute,omitempty"`
}

// ImageResponse is the public view of an image.
type ImageResponse struct {
	ID       uuid.UUID `json:"id"`
	URL      string    `json:"url"`
	AltText  string    `json:"altText,omitempty"`
	Position int       `json:"position"`
}

// VariantResponse is the public view of a product variant.
type VariantResponse struct {
	ID      uuid.UUID                 `json:"id"`
	SKU     string                    `json:"sku"`
	Price   decimal.Decimal           `json:"price"`
	Stock   int                       `json:"stock"`
	Values  []*AttributeValueResponse `json:"values,omitempty"`
	Images  []*ImageResponse          `json:"images,omitempty"`
	Product *ProductSummaryResponse   `json:"product,omitempty"`
}

// ProductSummaryResponse is the reduced product view embedded in variants and
// order items.
type ProductSummaryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// ProductResponse is the public view of a product.
type ProductResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Description string             `json:"description,omitempty"`
	CategoryID  uuid.UUID          `json:"categoryId"`
	Category    *CategoryResponse  `json:"category,omitempty"`
	IsActive    bool               `json:"isActive"`
	Images      []*ImageResponse   `json:"images,omitempty"`
	Variants    []*VariantResponse `json:"variants,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// OrderItemResponse is the public view of an order line.
type OrderItemResponse struct {
	ID        uuid.UUID        `json:"id"`
	VariantID uuid.UUID        `json:"variantId"`
	Quantity  int              `json:"quantity"`
	Price     decimal.Decimal  `json:"price"`
	LineTotal decimal.Decimal  `json:"lineTotal"`
	Variant   *VariantResponse `json:"variant,omitempty"`
}

// OrderResponse is the public view of an order.
type OrderResponse struct {
	ID            uuid.UUID            `json:"id"`
	UserID        uuid.UUID            `json:"userId"`
	Status        string               `json:"status"`
	PaymentMethod string               `json:"paymentMethod"`
	Total         decimal.Decimal      `json:"total"`
	Items         []*OrderItemResponse `json:"items"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// AuthResponse is returned by the auth endpoints.
type AuthResponse struct {
	AccessToken string        `json:"accessToken"`
	User        *UserResponse `json:"user"`
}

// --- Mapper Functions ---

func toUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	addresses := make([]*AddressResponse, 0, len(user.Addresses))
	for _, address := range user.Addresses {
		addresses = append(addresses, toAddressResponse(address))
	}

	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role.String(),
		Addresses: addresses,
		CreatedAt: user.CreatedAt,
	}
}

func toUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return out
}

func toAddressResponse(address *entity.Address) *AddressResponse {
	if address == nil {
		return nil
	}

	return &AddressResponse{
		ID:         address.ID,
		FirstName:  address.FirstName,
		LastName:   address.LastName,
		Phone:      address.Phone,
		Address:    address.Address,
		City:       address.City,
		PostalCode: address.PostalCode,
		Country:    address.Country,
		IsDefault:  address.IsDefault,
	}
}

func toAddressResponses(addresses []*entity.Address) []*AddressResponse {
	out := make([]*AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		out = append(out, toAddressResponse(address))
	}

	return out
}

func toCategoryResponse(category *entity.Category) *CategoryResponse {
	if category == nil {
		return nil
	}

	children := make([]*CategoryResponse, 0, len(category.Children))
	for _, child := range category.Children {
		children = append(children, toCategoryResponse(child))
	}

	return &CategoryResponse{
		ID:       category.ID,
		Name:     category.Name,
		Slug:     category.Slug,
		ParentID: category.ParentID,
		Children: children,
	}
}

func toCategoryResponses(categories []*entity.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, toCategoryResponse(category))
	}

	return out
}

func toAttributeResponse(attribute *entity.Attribute) *AttributeResponse {
	if attribute == nil {
		return nil
	}

	values := make([]*AttributeValueResponse, 0, len(attribute.Values))
	for _, value := range attribute.Values {
		values = append(values, toAttributeValueResponse(value))
	}

	return &AttributeResponse{
		ID:     attribute.ID,
		Name:   attribute.Name,
		Values: values,
	}
}

func toAttributeResponses(attributes []*entity.Attribute) []*AttributeResponse {
	out := make([]*AttributeResponse, 0, len(attributes))
	for _, attribute := range attributes {
		out = append(out, toAttributeResponse(attribute))
	}

	return out
}

func toAttributeValueResponse(value *entity.AttributeValue) *AttributeValueResponse {
	if value == nil {
		return nil
	}

	resp := &AttributeValueResponse{
		ID:          value.ID,
		AttributeID: value.AttributeID,
		Value:       value.Value,
	}
	if value.Attribute != nil {
		resp.Attribute = value.Attribute.Name
	}

	return resp
}

func toImageResponses(images []*entity.Image) []*ImageResponse {
	out := make([]*ImageResponse, 0, len(images))
	for _, image := range images {
		out = append(out, &ImageResponse{
			ID:       image.ID,
			URL:      image.URL,
			AltText:  image.AltText,
			Position: image.Position,
		})
	}

	return out
}

func toVariantResponse(variant *entity.Variant) *VariantResponse {
	if variant == nil {
		return nil
	}

	values := make([]*AttributeValueResponse, 0, len(variant.Values))
	for _, value := range variant.Values {
		values = append(values, toAttributeValueResponse(value))
	}

	resp := &VariantResponse{
		ID:     variant.ID,
		SKU:    variant.SKU,
		Price:  variant.Price,
		Stock:  variant.Stock,
		Values: values,
		Images: toImageResponses(variant.Images),
	}
	if variant.Product != nil {
		resp.Product = &ProductSummaryResponse{
			ID:   variant.Product.ID,
			Name: variant.Product.Name,
			Slug: variant.Product.Slug,
		}
	}

	return resp
}

func toProductResponse(product *entity.Product) *ProductResponse {
	if product == nil {
		return nil
	}

	variants := make([]*VariantResponse, 0, len(product.Variants))
	for _, variant := range product.Variants {
		variants = append(variants, toVariantResponse(variant))
	}

	return &ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Slug:        product.Slug,
		Description: product.Description,
		CategoryID:  product.CategoryID,
		Category:    toCategoryResponse(product.Category),
		IsActive:    product.IsActive,
		Images:      toImageResponses(product.Images),
		Variants:    variants,
		CreatedAt:   product.CreatedAt,
	}
}

func toProductResponses(products []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}

	return out
}

func toOrderResponse(order *entity.Order) *OrderResponse {
	if order == nil {
		return nil
	}

	items := make([]*OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &OrderItemResponse{
			ID:        item.ID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			LineTotal: item.LineTotal(),
			Variant:   toVariantResponse(item.Variant),
		})
	}

	return &OrderResponse{
		ID:            order.ID,
		UserID:        order.UserID,
		Status:        order.Status.String(),
		PaymentMethod: order.PaymentMethod.String(),
		Total:         order.Total,
		Items:         items,
		CreatedAt:     order.CreatedAt,
	}
}

func toOrderResponses(orders []*entity.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}

	return out
}
