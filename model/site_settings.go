package model

import (
	"time"

	"gorm.io/datatypes"
)

// SiteSettings holds site-wide configuration. Exactly one row exists;
// it is provisioned at migrate/seed time so read paths never create it.
type SiteSettings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SiteName string `gorm:"not null;default:'Sankalp Academy'" json:"site_name"`
	Tagline  string `gorm:"type:varchar(255)" json:"tagline"`

	ContactPhone   string `gorm:"type:varchar(20)" json:"contact_phone"`
	ContactEmail   string `json:"contact_email"`
	ContactAddress string `gorm:"type:text" json:"contact_address"`

	// Keyed by platform, e.g. {"facebook": "...", "instagram": "..."}
	SocialLinks datatypes.JSON `json:"social_links"`

	MetaTitle       string `gorm:"type:varchar(255)" json:"meta_title"`
	MetaDescription string `gorm:"type:text" json:"meta_description"`
	MetaKeywords    string `gorm:"type:text" json:"meta_keywords"`

	LogoURL    string `gorm:"type:text" json:"logo_url"`
	FaviconURL string `gorm:"type:text" json:"favicon_url"`
}

// TableName specifies the table name for SiteSettings
func (SiteSettings) TableName() string {
	return "site_settings"
}
