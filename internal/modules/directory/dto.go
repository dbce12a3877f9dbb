package directory

type UpdateClinicianRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Specialty *string `json:"specialty"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	UserID    *int64  `json:"user_id"`
	IsActive  *bool   `json:"is_active"`
}

type UpdateRoomRequest struct {
	Number       *string `json:"number"`
	Name         *string `json:"name"`
	RoomType     *string `json:"room_type"`
	Capacity     *int    `json:"capacity"`
	Availability *string `json:"availability"`
}
