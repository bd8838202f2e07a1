package Models

import "time"

const (
	StatusUndelivered = "UNDELIVERED"
	StatusDelivered   = "DELIVERED"
)

// Transaction records a brokered deal between a seller and a buyer. Every
// deal attribute is free text entered by the operator; seller, buyer,
// delivery place, payment and flag hold names from the master tables with no
// foreign key behind them. TransactionID is the human-readable code derived
// from seller/buyer and the numeric id.
type Transaction struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	TransactionID string `json:"transaction_id" gorm:"uniqueIndex"`

	Seller          string `json:"seller"`
	SellerBrokerage string `json:"seller_brokerage"`
	Buyer           string `json:"buyer"`
	BuyerBrokerage  string `json:"buyer_brokerage"`

	Product  string `json:"product"`
	Rate     string `json:"rate"`
	UnitRate string `json:"unit_rate"`
	Tax      string `json:"tax"`
	Quantity string `json:"quantity"`
	UnitQty  string `json:"unit_qty"`

	ConfirmDate   string `json:"confirm_date"`
	DeliveryTime  string `json:"delivery_time"`
	DeliveryPlace string `json:"delivery_place"`
	Payment       string `json:"payment"`
	Flag          string `json:"flag"`

	Status string `json:"status" gorm:"not null;default:UNDELIVERED"`

	DeliveryDate    string `json:"delivery_date"`
	TankerNo        string `json:"tanker_no"`
	BillNo          string `json:"bill_no"`
	DeliveryQty     string `json:"delivery_qty"`
	DeliveryUnitQty string `json:"delivery_unit_qty"`
	AmountRs        string `json:"amount_rs"`

	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Transaction) TableName() string { return "transactions" }
