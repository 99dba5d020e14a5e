package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceStatus string

const (
	ServiceActive   ServiceStatus = "active"
	ServiceInactive ServiceStatus = "inactive"
)

type Service struct {
	ID           uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	Title        string        `gorm:"not null" json:"title"`
	Description  string        `gorm:"not null" json:"description"`
	Category     string        `gorm:"not null" json:"category"`
	Image        string        `json:"image"`
	Features     StringSlice   `gorm:"type:json" json:"features"`
	Price        float64       `gorm:"type:decimal(10,2);not null" json:"price"`
	SellingPrice float64       `gorm:"type:decimal(10,2);not null" json:"sellingPrice"`
	Status       ServiceStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Status == "" {
		s.Status = ServiceActive
	}
	return
}

// StringSlice stores a list of strings as a JSON column
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		s = StringSlice{}
	}
	return json.Marshal(s)
}

func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for StringSlice")
	}
}
