// internal/workers/application/notify-recruiter/models.go
package notifyrecruiter

type Input struct {
	RecruiterEmail string  `json:"recruiterEmail"`
	RecruiterPhone string  `json:"recruiterPhone,omitempty"`
	ApplicationID  string  `json:"applicationId"`
	JobID          string  `json:"jobId"`
	Ranking        string  `json:"ranking"`
	OverallScore   float64 `json:"overallScore"`
}

type Output struct {
	NotificationID string `json:"notificationId"`
	EmailSent      bool   `json:"emailSent"`
	SMSSent        bool   `json:"smsSent"`
	SentAt         string `json:"sentAt"` // ISO 8601
}
