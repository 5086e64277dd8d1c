package entity

type CreateConsultationRequest struct {
	Title       string
	Description *string
}

type CreateConsultationResponse struct {
	Consultation *Consultation
}
