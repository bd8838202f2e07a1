package Models

import "time"

// Client is a party a deal can be brokered for. Names are not unique;
// transactions reference clients by name only, so lookups by name are
// best-effort.
type Client struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;index"`
	GstNo     string    `json:"gst_no"`
	FssaiNo   string    `json:"fssai_no"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Mobile    string    `json:"mobile"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Client) TableName() string { return "clients" }
