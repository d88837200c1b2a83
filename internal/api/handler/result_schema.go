package handler

type resultRowRequest struct {
	StudentName string  `json:"student_name" validate:"required"`
	Grade       float64 `json:"grade"`
	Outcome     string  `json:"outcome"      validate:"required,oneof=PASS FAIL ABSENT pass fail absent"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
