package entities

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type Task struct {
	ID          int      `gorm:"primaryKey" json:"id"`
	Title       string   `json:"title"`
	Tags        string   `json:"tags"`
	Owner       string   `json:"owner" gorm:"index"`
	Description string   `json:"description"`
	DueDate     string   `json:"due_date" gorm:"index"` // YYYY-MM-DD
	Priority    Priority `json:"priority"`
	Category    string   `json:"category"` // watering|fertilizing|harvesting|planting|maintenance|...
	Completed   bool     `json:"completed" gorm:"index"`
	FieldID     int      `json:"field_id" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Task) GetID() int   { return t.ID }
func (t *Task) SetID(id int) { t.ID = id }

type TaskPatch struct {
	Title       *string   `json:"title,omitempty"`
	Tags        *string   `json:"tags,omitempty"`
	Description *string   `json:"description,omitempty"`
	DueDate     *string   `json:"due_date,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Completed   *bool     `json:"completed,omitempty"`
	FieldID     *int      `json:"field_id,omitempty"`
}

func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.FieldID != nil {
		t.FieldID = *p.FieldID
	}
}

func (t *Task) SetOwner(uid string) { t.Owner = uid }
