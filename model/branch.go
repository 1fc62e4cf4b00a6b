package model

import "time"

// Branch represents a physical campus of the institute
type Branch struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"not null" json:"name"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`
	Address   string    `gorm:"type:text" json:"address"`
	City      string    `gorm:"type:varchar(100);index" json:"city"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	Email     string    `json:"email"`

	// Either coordinates or an embed URL; the UI uses whichever is set.
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	MapEmbedURL string   `gorm:"type:text" json:"map_embed_url"`

	Facilities   StringList `gorm:"type:text[]" json:"facilities"`
	IsHeadOffice bool       `gorm:"default:false" json:"is_head_office"`

	// Detail page fields
	MainImageURL    string     `gorm:"type:text" json:"main_image_url"`
	About           string     `gorm:"type:text" json:"about"`
	EstablishedYear int        `gorm:"default:0" json:"established_year"`
	StudentCount    int        `gorm:"default:0" json:"student_count"`
	FacultyCount    int        `gorm:"default:0" json:"faculty_count"`
	Achievements    StringList `gorm:"type:text[]" json:"achievements"`
	GalleryImages   StringList `gorm:"type:text[]" json:"gallery_images"`
	Timing          string     `gorm:"type:varchar(255)" json:"timing"`

	// Relationships
	Courses     []BranchCourse `gorm:"foreignKey:BranchID;constraint:OnDelete:CASCADE" json:"courses,omitempty"`
	Enrollments []Enrollment   `gorm:"foreignKey:BranchID;constraint:OnDelete:CASCADE" json:"-"`
}
