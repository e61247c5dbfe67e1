package entities

import "time"

type Expense struct {
	ID          int     `gorm:"primaryKey" json:"id"`
	Name        string  `json:"name"`
	Tags        string  `json:"tags"`
	Owner       string  `json:"owner" gorm:"index"`
	Category    string  `json:"category" gorm:"index"` // seeds|fertilizer|equipment|labor|...
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Description string  `json:"description"`
	CropID      int     `json:"crop_id" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Expense) GetID() int   { return e.ID }
func (e *Expense) SetID(id int) { e.ID = id }

type ExpensePatch struct {
	Name        *string  `json:"name,omitempty"`
	Tags        *string  `json:"tags,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Description *string  `json:"description,omitempty"`
	CropID      *int     `json:"crop_id,omitempty"`
}

func (p ExpensePatch) Apply(e *Expense) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Tags != nil {
		e.Tags = *p.Tags
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.CropID != nil {
		e.CropID = *p.CropID
	}
}

func (e *Expense) SetOwner(uid string) { e.Owner = uid }
