package ticket

type CreateTicketInput struct {
	Title       string `json:"title" form:"title" binding:"required,min=3,max=200" example:"VPN down"`
	Description string `json:"description" form:"description" binding:"required" example:"Nobody in the office can reach the VPN gateway."`
	Priority    string `json:"priority" form:"priority" binding:"required,oneof=low medium high urgent" example:"high"`
}

type UpdateStatusInput struct {
	Status     string  `json:"status" form:"status" binding:"required,oneof=approved rejected" example:"approved"`
	AdminNotes *string `json:"admin_notes,omitempty" form:"admin_notes,omitempty" example:"Scheduled for Tuesday."`
}

type UpdateNotesInput struct {
	AdminNotes string `json:"admin_notes" form:"admin_notes" binding:"required" example:"Followed up by phone."`
}
