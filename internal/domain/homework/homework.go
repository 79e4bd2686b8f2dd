package homework

import "fmt"

// Status is the review state of a homework as reported by the API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// verdicts maps every documented status to its user-facing verdict text.
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the verdict text for a status and whether the status is documented.
func Verdict(s Status) (string, bool) {
	v, ok := verdicts[s]
	return v, ok
}

// Homework is one record from the homeworks feed.
type Homework struct {
	Name   string `json:"homework_name"`
	Status Status `json:"status"`
}

// StatusMessage renders the notification text for a homework record.
// An undocumented status must not block notification, so it falls back to the
// raw status value as the verdict; the second return value reports whether the
// status was found in the catalog, letting the caller log the condition.
func StatusMessage(hw Homework) (string, bool) {
	verdict, known := Verdict(hw.Status)
	if !known {
		verdict = string(hw.Status)
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", hw.Name, verdict), known
}
