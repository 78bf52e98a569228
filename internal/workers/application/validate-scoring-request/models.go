// internal/workers/application/validate-scoring-request/models.go
package validatescoringrequest

type Output struct {
	IsValid          bool     `json:"isValid"`
	ValidationErrors []string `json:"validationErrors"`
}
