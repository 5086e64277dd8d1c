package entity

type UpsertNoteRequest struct {
	ConsultationID int
	Content        string
}

type UpsertNoteResponse struct {
	Note *Note
}
