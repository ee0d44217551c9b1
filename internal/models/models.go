package models

import (
	"time"

	"gorm.io/gorm"
)

// Material types accepted for stock and raw materials.
const (
	MaterialGold     = "gold"
	MaterialSilver   = "silver"
	MaterialPlatinum = "platinum"
	MaterialDiamond  = "diamond"
	MaterialOther    = "other"
)

// Payment types accepted on a Payment record.
const (
	PaymentCash       = "cash"
	PaymentCredit     = "credit"
	PaymentDebit      = "debit"
	PaymentSettlement = "udharsettlement"
	PaymentUPI        = "upi"
	PaymentOther      = "other"
)

// Sale subject discriminator.
const (
	SaleTypeStock       = "stock"
	SaleTypeRawMaterial = "rawmaterial"
)

// User - staff and admins of the shop
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:120" json:"name"`
	Email        string         `gorm:"uniqueIndex;size:180" json:"email"`
	Contact      string         `gorm:"uniqueIndex;size:30" json:"contact"`
	PasswordHash string         `json:"-"`                   // Never return this in JSON
	Role         string         `gorm:"size:20" json:"role"` // 'admin' or 'staff'
	CreatedAt    time.Time      `json:"created_at"`
	RemoveAt     gorm.DeletedAt `gorm:"column:remove_at;index" json:"remove_at"`
}

// Firm - a business location everything else is scoped under
type Firm struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:160" json:"name"`
	Location  string         `gorm:"size:200" json:"location"`
	Size      string         `gorm:"size:60" json:"size"`
	OwnerID   uint           `gorm:"index" json:"owner_id"`
	Owner     User           `json:"owner"`
	LogoPath  string         `json:"logo_path"`
	CreatedAt time.Time      `json:"created_at"`
	RemoveAt  gorm.DeletedAt `gorm:"column:remove_at;index" json:"remove_at"`
}

type Customer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:120" json:"name"`
	Email     string         `gorm:"uniqueIndex;size:180" json:"email"`
	Contact   string         `gorm:"uniqueIndex;size:30" json:"contact"`
	FirmID    uint           `gorm:"index" json:"firm_id"`
	Address   string         `gorm:"size:255" json:"address"`
	CreatedAt time.Time      `json:"created_at"`
	RemoveAt  gorm.DeletedAt `gorm:"column:remove_at;index" json:"remove_at"`
}

type StockCategory struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"uniqueIndex;size:120" json:"name"`
	Description string         `gorm:"size:255" json:"description"`
	ImagePath   string         `json:"image_path"`
	CreatedAt   time.Time      `json:"created_at"`
	RemoveAt    gorm.DeletedAt `gorm:"column:remove_at;index" json:"remove_at"`
}

// Stock - a sellable item. TotalValue is fixed at creation: price + making charge.
type Stock struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:160" json:"name"`
	MaterialType string         `gorm:"size:20;index" json:"material_type"`
	Weight       float64        `json:"weight"`
	CategoryID   uint           `gorm:"index" json:"category_id"`
	FirmID       uint           `gorm:"index" json:"firm_id"`
	Quantity     int            `json:"quantity"`
	Price        float64        `json:"price"`
	MakingCharge float64        `json:"making_charge"`
	TotalValue   float64        `json:"total_value"`
	StockCode    string         `gorm:"uniqueIndex;size:64" json:"stock_code"`
	ImagePath    string         `json:"image_path"`
	CreatedAt    time.Time      `json:"created_at"`
	RemoveAt     gorm.DeletedAt `gorm:"column:remove_at;index" json:"remove_at"`
}

// RawMaterial - bulk metal/stone. Weight grows via the restock operation.
type RawMaterial struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:160" json:"name"`
	MaterialType string         `gorm:"size:20;index" json:"material_type"`
	Code         string         `gorm:"uniqueIndex;size:64" json:"code"`
	Weight       float64        `json:"weight"`
	FirmID       uint           `gorm:"index" json:"firm_id"`
	ImagePath    string         `json:"image_path"`
	CreatedAt    time.Time      `json:"created_at"`
	RemoveAt     gorm.DeletedAt `gorm:"column:remove_at;index" json:"remove_at"`
}

// GoldRate - per-karat gold prices inside a daily rate record
type GoldRate struct {
	K24 float64 `json:"k24"`
	K23 float64 `json:"k23"`
	K22 float64 `json:"k22"`
	K20 float64 `json:"k20"`
	K18 float64 `json:"k18"`
}

// DiamondRate - price brackets by carat range
type DiamondRate struct {
	BelowHalfCarat float64 `json:"below_half_carat"`
	HalfToOneCarat float64 `json:"half_to_one_carat"`
	AboveOneCarat  float64 `json:"above_one_carat"`
}

// DailyRate - one record per calendar day. Date is stored at midnight UTC;
// the handler enforces uniqueness with a day-range existence check.
type DailyRate struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Date      time.Time   `gorm:"index" json:"date"`
	Gold      GoldRate    `gorm:"embedded;embeddedPrefix:gold_" json:"gold"`
	Silver    float64     `json:"silver"`
	Diamond   DiamondRate `gorm:"embedded;embeddedPrefix:diamond_" json:"diamond"`
	CreatedAt time.Time   `json:"created_at"`
}

// Girvi - a pawned item held against a loan
type Girvi struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	ItemName         string         `gorm:"size:160" json:"item_name"`
	ItemType         string         `gorm:"size:60" json:"item_type"`
	ItemWeight       float64        `json:"item_weight"`
	ItemValue        float64        `json:"item_value"`
	TotalPayable     float64        `json:"total_payable"`
	InterestRate     float64        `json:"interest_rate"`
	LastDateToRedeem time.Time      `json:"last_date_to_redeem"`
	CustomerID       uint           `gorm:"index" json:"customer_id"`
	FirmID           uint           `gorm:"index" json:"firm_id"`
	ImagePath        string         `json:"image_path"`
	CreatedAt        time.Time      `json:"created_at"`
	RemoveAt         gorm.DeletedAt `gorm:"column:remove_at;index" json:"remove_at"`
}

// Sale - references either a Stock or a RawMaterial, discriminated by SaleType.
type Sale struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	SaleType       string         `gorm:"size:20" json:"sale_type"` // 'stock' or 'rawmaterial'
	SaleMaterialID uint           `gorm:"index" json:"sale_material_id"`
	CustomerID     uint           `gorm:"index" json:"customer_id"`
	FirmID         uint           `gorm:"index" json:"firm_id"`
	TotalAmount    float64        `json:"total_amount"`
	Quantity       int            `json:"quantity"`
	SaleDate       time.Time      `gorm:"index" json:"sale_date"`
	CreatedAt      time.Time      `json:"created_at"`
	RemoveAt       gorm.DeletedAt `gorm:"column:remove_at;index" json:"remove_at"`
}

// Udhar - an outstanding credit balance owed by a customer against a sale.
// The outstanding amount is never stored; it is Amount minus the sum of
// settlements, computed on read.
type Udhar struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CustomerID uint           `gorm:"index" json:"customer_id"`
	FirmID     uint           `gorm:"index" json:"firm_id"`
	Amount     float64        `json:"amount"`
	SaleID     uint           `gorm:"index" json:"sale_id"`
	CreatedAt  time.Time      `json:"created_at"`
	RemoveAt   gorm.DeletedAt `gorm:"column:remove_at;index" json:"remove_at"`
}

// UdharSettlement - a payment applied against an Udhar. Many per Udhar.
type UdharSettlement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UdharID     uint      `gorm:"index" json:"udhar_id"`
	CustomerID  uint      `gorm:"index" json:"customer_id"`
	FirmID      uint      `gorm:"index" json:"firm_id"`
	SaleID      uint      `gorm:"index" json:"sale_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	CreatedAt   time.Time `json:"created_at"`
}

type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PaymentType   string    `gorm:"size:20" json:"payment_type"`
	ReferenceCode string    `gorm:"size:64" json:"reference_code"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	SaleID        uint      `gorm:"index" json:"sale_id"`
	CustomerID    uint      `gorm:"index" json:"customer_id"`
	FirmID        uint      `gorm:"index" json:"firm_id"`
	CreatedAt     time.Time `json:"created_at"`
}
