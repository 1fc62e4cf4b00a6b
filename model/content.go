package model

import "time"

// GalleryImage represents an image shown on the public gallery page
type GalleryImage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"type:text;not null" json:"image_url"`
	Category    string    `gorm:"type:varchar(50);index;default:'other'" json:"category"` // campus, facilities, students, events, achievements, other
	IsActive    bool      `gorm:"default:true" json:"is_active"`
}

// Testimonial represents a student/parent/alumni quote
type Testimonial struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"not null" json:"name"`
	Role      string    `gorm:"type:varchar(20);default:'student'" json:"role"` // student, parent, alumni
	Course    string    `gorm:"type:varchar(100)" json:"course"`
	Rating    int       `gorm:"not null;default:5" json:"rating"` // 1-5
	Message   string    `gorm:"type:text;not null" json:"message"`
	ImageURL  string    `gorm:"type:text" json:"image_url"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
}

// HeroContent represents a rotating banner on the home page.
// Multiple rows may be active at once; the page cycles through them
// in ascending display order.
type HeroContent struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Title         string    `gorm:"not null" json:"title"`
	Subtitle      string    `gorm:"type:text" json:"subtitle"`
	CTAText       string    `gorm:"type:varchar(100)" json:"cta_text"`
	CTALink       string    `gorm:"type:varchar(255)" json:"cta_link"`
	BackgroundURL string    `gorm:"type:text" json:"background_url"`
	DisplayOrder  int       `gorm:"default:0;index" json:"display_order"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
}

// TeamMember represents a faculty member, principal or trustee profile
type TeamMember struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `gorm:"not null" json:"name"`
	Role         string    `gorm:"not null" json:"role"`
	Subtitle     string    `gorm:"type:varchar(255)" json:"subtitle"`
	ImageURL     string    `gorm:"type:text" json:"image_url"`
	Type         string    `gorm:"type:varchar(20);default:'principal'" json:"type"` // principal, trustee
	DisplayOrder int       `gorm:"default:0;index" json:"display_order"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
}
