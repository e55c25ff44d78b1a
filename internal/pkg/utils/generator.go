package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// GeneratePatientCode builds the external patient code shown to staff, e.g. PAC-3F2A9C.
func GeneratePatientCode() string {
	id := uuid.NewString()
	return fmt.Sprintf("PAC-%s", id[:6])
}

func GenerateReportObjectName(episodeID string) string {
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("informes/alta_%s_%s.csv", episodeID, timestamp)
}
