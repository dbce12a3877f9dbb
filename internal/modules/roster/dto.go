package roster

type CreateShiftRequest struct {
	UserID          int64  `json:"user_id" binding:"required"`
	ShiftTemplateID *int64 `json:"shift_template_id"`
	Date            string `json:"schedule_date" binding:"required"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Notes           string `json:"notes"`
}

type UpdateShiftRequest struct {
	UserID          *int64  `json:"user_id"`
	ShiftTemplateID *int64  `json:"shift_template_id"`
	Date            *string `json:"schedule_date"`
	StartTime       *string `json:"start_time"`
	EndTime         *string `json:"end_time"`
	Status          *string `json:"status"`
	Notes           *string `json:"notes"`
}

type CreateLeaveRequest struct {
	UserID    int64  `json:"user_id" binding:"required"`
	LeaveType string `json:"leave_type" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason"`
}

type DecideLeaveRequest struct {
	Status          string `json:"status" binding:"required"`
	RejectionReason string `json:"rejection_reason"`
}
