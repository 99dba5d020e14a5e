package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingCreated   BookingStatus = "booking_created"
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
	BookingRefund    BookingStatus = "refund"
)

// Booking records a purchase of a service with manual payment verification.
// Price fields are copied from the service at creation time and never updated
// afterwards, so later catalog edits do not rewrite booking history.
type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	User   User      `gorm:"foreignKey:UserID" json:"user"`

	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	Service   Service   `gorm:"foreignKey:ServiceID" json:"service"`

	PersonalDetailID uuid.UUID      `gorm:"type:uuid;not null" json:"personalDetailId"`
	PersonalDetail   PersonalDetail `gorm:"foreignKey:PersonalDetailID" json:"personalDetail"`

	Price        float64 `gorm:"type:decimal(10,2)" json:"price"`
	SellingPrice float64 `gorm:"type:decimal(10,2)" json:"sellingPrice"`

	TransactionID string `json:"transactionId"`
	Screenshot    string `json:"screenshot"` // stored path of the payment proof, "" if none

	// Any-to-any transitions are allowed; the enum is enforced by the schema,
	// not by the controllers.
	Status       BookingStatus `gorm:"type:varchar(20);not null;default:'booking_created';check:status IN ('booking_created','pending','approved','confirmed','completed','cancelled','refund')" json:"status"`
	StatusRemark string        `json:"statusRemark"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = BookingCreated
	}
	return
}
