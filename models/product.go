// product.go - Defines the Product model

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product statuses. Any status may replace any other; nothing is derived from stock.
const (
	StatusActive     = "Active"
	StatusArchived   = "Archived"
	StatusOutOfStock = "Out of Stock"
)

type Product struct {
	ID          string              `gorm:"primaryKey;size:36" json:"id" bson:"_id"`
	Name        string              `gorm:"size:255;not null" json:"name" bson:"name" validate:"required"`
	Description string              `gorm:"type:text" json:"description" bson:"description"`
	Price       decimal.NullDecimal `gorm:"type:decimal(12,2);not null" json:"price" bson:"price" validate:"gte=0"`
	Category    string              `gorm:"size:255;index" json:"category" bson:"category"`
	Stock       int                 `gorm:"not null;default:0" json:"stock" bson:"stock" validate:"gte=0"`
	Status      string              `gorm:"size:32;not null;default:'Active'" json:"status" bson:"status" validate:"required,oneof=Active Archived 'Out of Stock'"`
	Images      []string            `gorm:"type:text;serializer:json" json:"images" bson:"images"` // Ordered image URLs
	CreatedAt   time.Time           `json:"createdAt" bson:"created_at"`
}

func (p *Product) Prepare(now time.Time) {
	if p.ID == "" {
		p.ID = NewID()
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now.UTC()
	}
}

type ProductPatch struct {
	Name        *string          `json:"name" validate:"omitnil,min=1"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"omitnil,gte=0"`
	Category    *string          `json:"category"`
	Stock       *int             `json:"stock" validate:"omitnil,gte=0"`
	Status      *string          `json:"status" validate:"omitnil,oneof=Active Archived 'Out of Stock'"`
	Images      *[]string        `json:"images"`
}

func (p ProductPatch) Fields() map[string]any {
	f := map[string]any{}
	if p.Name != nil {
		f["name"] = *p.Name
	}
	if p.Description != nil {
		f["description"] = *p.Description
	}
	if p.Price != nil {
		f["price"] = decimal.NewNullDecimal(*p.Price)
	}
	if p.Category != nil {
		f["category"] = *p.Category
	}
	if p.Stock != nil {
		f["stock"] = *p.Stock
	}
	if p.Status != nil {
		f["status"] = *p.Status
	}
	if p.Images != nil {
		images := *p.Images
		if images == nil {
			images = []string{}
		}
		f["images"] = images
	}
	return f
}

func (p ProductPatch) Apply(dst *Product) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.Price != nil {
		dst.Price = decimal.NewNullDecimal(*p.Price)
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	if p.Stock != nil {
		dst.Stock = *p.Stock
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.Images != nil {
		dst.Images = *p.Images
		if dst.Images == nil {
			dst.Images = []string{}
		}
	}
}
