package portfolio

type CreateProjectInput struct {
	Title       string  `json:"title" form:"title" binding:"required,min=2,max=200" example:"Retail POS rollout"`
	Category    string  `json:"category" form:"category" binding:"required,max=100" example:"Infrastructure"`
	Description string  `json:"description" form:"description" binding:"required" example:"40-store POS deployment with centralized monitoring."`
	ImageURL    *string `json:"image_url,omitempty" form:"image_url,omitempty" binding:"omitempty,url"`
	ProjectURL  *string `json:"project_url,omitempty" form:"project_url,omitempty" binding:"omitempty,url"`
}

type UpdateProjectInput struct {
	Title       *string `json:"title,omitempty" form:"title,omitempty" binding:"omitempty,min=2,max=200"`
	Category    *string `json:"category,omitempty" form:"category,omitempty" binding:"omitempty,max=100"`
	Description *string `json:"description,omitempty" form:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty" form:"image_url,omitempty" binding:"omitempty,url"`
	ProjectURL  *string `json:"project_url,omitempty" form:"project_url,omitempty" binding:"omitempty,url"`
}
