package user

type SignUpInput struct {
	FullName string `json:"full_name" form:"full_name" binding:"required,min=2,max=100" example:"John Doe"`
	Email    string `json:"email" form:"email" binding:"required,email" example:"john@example.com"`
	Password string `json:"password" form:"password" binding:"required,min=6" example:"secret1"`
}

type SignInInput struct {
	Email    string `json:"email" form:"email" binding:"required,email" example:"john@example.com"`
	Password string `json:"password" form:"password" binding:"required" example:"secret1"`
}

type ProfileDTO struct {
	UID      uint   `json:"u_id" example:"123"`
	Email    string `json:"email" example:"john@example.com"`
	FullName string `json:"full_name" example:"John Doe"`
	IsAdmin  bool   `json:"is_admin" example:"false"`
}

func ToProfileDTO(u User) ProfileDTO {
	return ProfileDTO{
		UID:      u.UID,
		Email:    u.Email,
		FullName: u.FullName,
		IsAdmin:  u.IsAdmin(),
	}
}
