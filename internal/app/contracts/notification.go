package contracts

import "context"

// DischargeNotice is the message published when an episode is discharged.
type DischargeNotice struct {
	EpisodeID      string `json:"episode_id"`
	PatientID      string `json:"patient_id"`
	PatientName    string `json:"patient_name"`
	Department     string `json:"department"`
	FinalDiagnosis string `json:"final_diagnosis"`
	Condition      string `json:"condition"`
	DischargedBy   string `json:"discharged_by"`
	DischargedAt   string `json:"discharged_at"`
}

type DischargeNotifier interface {
	PublishDischarge(ctx context.Context, notice *DischargeNotice) error
}

type Mailer interface {
	Send(to, subject, body string) error
}
