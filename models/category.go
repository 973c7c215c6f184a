// category.go - Defines the Category model

package models

import "time"

type Category struct {
	ID   string `gorm:"primaryKey;size:36" json:"id" bson:"_id"`
	Name string `gorm:"size:191;uniqueIndex;not null" json:"name" bson:"name" validate:"required"` // Unique category name
}

func (c *Category) Prepare(time.Time) {
	if c.ID == "" {
		c.ID = NewID()
	}
}

type CategoryPatch struct {
	Name *string `json:"name" validate:"omitnil,min=1"`
}

func (p CategoryPatch) Fields() map[string]any {
	f := map[string]any{}
	if p.Name != nil {
		f["name"] = *p.Name
	}
	return f
}

func (p CategoryPatch) Apply(dst *Category) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
}
