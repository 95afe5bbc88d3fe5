package models

import "time"

type Role string
type MembershipTier string
type AccountStatus string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"

	MembershipBasic   MembershipTier = "Basic"
	MembershipPremium MembershipTier = "Premium"
	MembershipPro     MembershipTier = "Pro"

	StatusActive    AccountStatus = "Active"
	StatusInactive  AccountStatus = "Inactive"
	StatusSuspended AccountStatus = "Suspended"
)

type User struct {
	ID         string         `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"not null" json:"name"`
	Email      string         `gorm:"uniqueIndex;not null" json:"email"`
	Password   string         `gorm:"not null" json:"-"`
	Role       Role           `gorm:"type:VARCHAR(10);default:'member'" json:"role"`
	Membership MembershipTier `gorm:"type:VARCHAR(10);default:'Basic'" json:"membership"`
	Status     AccountStatus  `gorm:"type:VARCHAR(10);default:'Active'" json:"status"`
	IsVerified bool           `json:"is_verified"`
	Address    Address        `gorm:"embedded" json:"address"`
	Cart       Cart           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders     []Order        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Address is embedded in User (home address) and Order (shipping destination).
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}
