package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddressType string

const (
	AddressHome   AddressType = "home"
	AddressOffice AddressType = "office"
	AddressOther  AddressType = "other"
)

// PersonalDetail is a saved delivery/contact profile belonging to one user.
type PersonalDetail struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	User   User      `gorm:"foreignKey:UserID" json:"-"`

	Name        string      `gorm:"not null" json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Pin         string      `json:"pin"`
	Profession  string      `json:"profession"`
	AddressType AddressType `gorm:"type:varchar(20);not null;default:'home'" json:"addressType"`
	IsSelected  bool        `gorm:"default:false" json:"isSelected"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *PersonalDetail) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.AddressType == "" {
		p.AddressType = AddressHome
	}
	return
}
