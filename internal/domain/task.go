package domain

import "time"

// TaskStatus is the lifecycle state of a task. Values match what the
// API exchanges with clients.
type TaskStatus string

const (
	StatusPending    TaskStatus = "Pendente"
	StatusInProgress TaskStatus = "Em Andamento"
	StatusCompleted  TaskStatus = "Concluida"
)

// ParseTaskStatus maps a request value to a status. An empty value
// falls back to Pendente; anything unknown is rejected.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch TaskStatus(s) {
	case "":
		return StatusPending, true
	case StatusPending, StatusInProgress, StatusCompleted:
		return TaskStatus(s), true
	}
	return "", false
}

type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"titulo"`
	Description string     `json:"descricao"`
	ProjectID   int64      `json:"projeto_id"`
	ProjectName string     `json:"nome_projeto,omitempty"`
	DueDate     *time.Time `json:"-"`
	Status      TaskStatus `json:"status"`
}
