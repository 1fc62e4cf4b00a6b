package model

import "time"

// Course represents a coaching program offering (e.g., NEET, JEE batches)
type Course struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Name        string     `gorm:"not null" json:"name"`
	Slug        string     `gorm:"uniqueIndex;not null" json:"slug"`
	Description string     `gorm:"type:text" json:"description"`
	Category    string     `gorm:"type:varchar(50);index" json:"category"` // e.g., "NEET", "JEE"
	Price       float64    `gorm:"not null;default:0" json:"price"`
	Duration    string     `gorm:"type:varchar(100)" json:"duration"` // free text, e.g. "1 Year"
	Features    StringList `gorm:"type:text[]" json:"features"`
	Syllabus    string     `gorm:"type:text" json:"syllabus"`
	ImageURL    string     `gorm:"type:text" json:"image_url"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`

	// Relationships
	Branches    []BranchCourse `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	Enrollments []Enrollment   `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}

// BranchCourse represents the many-to-many relationship between branches and courses
type BranchCourse struct {
	BranchID uint  `gorm:"primaryKey" json:"branch_id"`
	CourseID uint  `gorm:"primaryKey" json:"course_id"`
	LinkedAt int64 `gorm:"autoCreateTime" json:"linked_at"`

	// Relationships
	Branch Branch `gorm:"foreignKey:BranchID;constraint:OnDelete:CASCADE" json:"-"`
	Course Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
}
