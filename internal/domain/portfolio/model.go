package portfolio

import "time"

// Project is a showcase entry on the public portfolio page. Entries are
// global and admin-managed; there is no ownership concept.
type Project struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Category    string    `gorm:"size:100;not null" json:"category"`
	Description string    `gorm:"type:text;not null" json:"description"`
	ImageURL    *string   `gorm:"size:500" json:"image_url"`
	ProjectURL  *string   `gorm:"size:500" json:"project_url"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string {
	return "portfolio_projects"
}
