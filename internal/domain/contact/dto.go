package contact

type CreateMessageInput struct {
	Name    string `json:"name" form:"name" binding:"required,min=2,max=100" example:"Jane Smith"`
	Email   string `json:"email" form:"email" binding:"required,email" example:"jane@example.com"`
	Subject string `json:"subject" form:"subject" binding:"required,max=200" example:"Managed services quote"`
	Body    string `json:"body" form:"body" binding:"required" example:"We are looking for 24/7 coverage for two offices."`
}
