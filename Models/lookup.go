package Models

import "time"

// LookupRow is the shared shape of the six reference tables. Rows are never
// physically removed; deletion flips IsActive and the name keeps holding the
// unique slot.
type LookupRow struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type QtyType struct{ LookupRow }

func (QtyType) TableName() string { return "qty_types" }

type RateUnit struct{ LookupRow }

func (RateUnit) TableName() string { return "rate_per_unit" }

type ItemType struct{ LookupRow }

func (ItemType) TableName() string { return "item_types" }

type DeliveryPlace struct{ LookupRow }

func (DeliveryPlace) TableName() string { return "delivery_places" }

type PaymentType struct{ LookupRow }

func (PaymentType) TableName() string { return "payment_types" }

type Flag struct{ LookupRow }

func (Flag) TableName() string { return "flags" }
