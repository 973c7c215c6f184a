// order.go - Defines the Order and OrderItem models

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Transitions are not restricted.
const (
	OrderProcessing = "Processing"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"
)

// Order totals are whatever the client sent; they are never recomputed from items.
type Order struct {
	ID        string              `gorm:"primaryKey;size:36" json:"id" bson:"_id"`
	Customer  string              `gorm:"size:255;not null" json:"customer" bson:"customer" validate:"required"`
	Items     []OrderItem         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items" bson:"items" validate:"dive"`
	Total     decimal.NullDecimal `gorm:"type:decimal(12,2);not null" json:"total" bson:"total" validate:"gte=0"`
	Status    string              `gorm:"size:32;not null;default:'Processing'" json:"status" bson:"status" validate:"required,oneof=Processing Shipped Delivered Cancelled"`
	OrderDate time.Time           `json:"orderDate" bson:"order_date"`
}

// OrderItem is a row of the order_items table for SQL stores and an embedded
// document for mongo.
type OrderItem struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id,omitempty" bson:"id,omitempty"`
	OrderID     string          `gorm:"size:36;index;not null" json:"-" bson:"-"`
	Position    int             `gorm:"not null;default:0" json:"-" bson:"-"` // Keeps items in request order
	ProductName string          `gorm:"size:255;not null" json:"productName" bson:"product_name" validate:"required"`
	Quantity    int             `gorm:"not null" json:"quantity" bson:"quantity" validate:"gte=1"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price" bson:"price" validate:"gte=0"`
}

func (o *Order) Prepare(now time.Time) {
	if o.ID == "" {
		o.ID = NewID()
	}
	if o.Status == "" {
		o.Status = OrderProcessing
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = now.UTC()
	}
	o.PrepareItems()
}

// PrepareItems assigns identities and positions to the items and links them to o.
func (o *Order) PrepareItems() {
	if o.Items == nil {
		o.Items = []OrderItem{}
	}
	for i := range o.Items {
		if o.Items[i].ID == "" {
			o.Items[i].ID = NewID()
		}
		o.Items[i].OrderID = o.ID
		o.Items[i].Position = i
	}
}

type OrderPatch struct {
	Customer  *string          `json:"customer" validate:"omitnil,min=1"`
	Items     *[]OrderItem     `json:"items" validate:"omitnil,dive"`
	Total     *decimal.Decimal `json:"total" validate:"omitnil,gte=0"`
	Status    *string          `json:"status" validate:"omitnil,oneof=Processing Shipped Delivered Cancelled"`
	OrderDate *time.Time       `json:"orderDate"`
}

func (p OrderPatch) Fields() map[string]any {
	f := map[string]any{}
	if p.Customer != nil {
		f["customer"] = *p.Customer
	}
	if p.Items != nil {
		items := *p.Items
		if items == nil {
			items = []OrderItem{}
		}
		f["items"] = items
	}
	if p.Total != nil {
		f["total"] = decimal.NewNullDecimal(*p.Total)
	}
	if p.Status != nil {
		f["status"] = *p.Status
	}
	if p.OrderDate != nil {
		f["order_date"] = p.OrderDate.UTC()
	}
	return f
}

func (p OrderPatch) Apply(dst *Order) {
	if p.Customer != nil {
		dst.Customer = *p.Customer
	}
	if p.Items != nil {
		dst.Items = append([]OrderItem(nil), (*p.Items)...)
		for i := range dst.Items {
			dst.Items[i].ID = "" // Replaced items get fresh identities
		}
		dst.PrepareItems()
	}
	if p.Total != nil {
		dst.Total = decimal.NewNullDecimal(*p.Total)
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.OrderDate != nil {
		dst.OrderDate = p.OrderDate.UTC()
	}
}
