package entity

type SummaryStatus string

const (
	SummaryCreated SummaryStatus = "created"
	SummaryUpdated SummaryStatus = "updated"
)

type GenerateSummaryRequest struct {
	ConsultationID int
}

type GenerateSummaryResponse struct {
	Summary *Summary
	Status  SummaryStatus
}
