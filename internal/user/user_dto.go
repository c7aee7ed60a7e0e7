package user

type CreateEmployeeRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=6"`
	Name        string  `json:"name" binding:"required"`
	Designation string  `json:"designation" binding:"required"`
	Department  string  `json:"department" binding:"required"`
	JoiningDate string  `json:"joining_date" binding:"required,datetime=2006-01-02"`
	Contact     *string `json:"contact"`
}

type UpdateEmployeeRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Name        string  `json:"name" binding:"required"`
	Designation string  `json:"designation" binding:"required"`
	Department  string  `json:"department" binding:"required"`
	JoiningDate string  `json:"joining_date" binding:"required,datetime=2006-01-02"`
	Contact     *string `json:"contact"`
	// Optional; when set the password is re-hashed.
	Password *string `json:"password" binding:"omitempty,min=6"`
}

type UserResponse struct {
	ID          uint    `json:"id"`
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Designation string  `json:"designation"`
	Department  string  `json:"department"`
	JoiningDate string  `json:"joining_date"`
	Contact     *string `json:"contact,omitempty"`
}

func NewResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        string(u.Role),
		Designation: u.Designation,
		Department:  u.Department,
		JoiningDate: u.JoiningDate,
		Contact:     u.Contact,
	}
}
