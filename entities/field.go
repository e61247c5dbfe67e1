package entities

import "time"

type FieldStatus string

const (
	FieldHealthy     FieldStatus = "healthy"
	FieldGrowing     FieldStatus = "growing"
	FieldHarvested   FieldStatus = "harvested"
	FieldFallow      FieldStatus = "fallow"
	FieldMaintenance FieldStatus = "maintenance"
)

// FieldStatuses lists every field status in display order.
var FieldStatuses = []FieldStatus{FieldHealthy, FieldGrowing, FieldHarvested, FieldFallow, FieldMaintenance}

func (s FieldStatus) Valid() bool {
	for _, v := range FieldStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Field struct {
	ID       int         `gorm:"primaryKey" json:"id"`
	Name     string      `json:"name"`
	Tags     string      `json:"tags"`
	Owner    string      `json:"owner" gorm:"index"`
	Size     float64     `json:"size"`
	Unit     string      `json:"unit"` // acres|hectares|rai
	Status   FieldStatus `json:"status" gorm:"index"`
	SoilType string      `json:"soil_type"`
	Location string      `json:"location"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *Field) GetID() int   { return f.ID }
func (f *Field) SetID(id int) { f.ID = id }

// FieldPatch carries a partial update; nil fields are left untouched.
type FieldPatch struct {
	Name     *string      `json:"name,omitempty"`
	Tags     *string      `json:"tags,omitempty"`
	Size     *float64     `json:"size,omitempty"`
	Unit     *string      `json:"unit,omitempty"`
	Status   *FieldStatus `json:"status,omitempty"`
	SoilType *string      `json:"soil_type,omitempty"`
	Location *string      `json:"location,omitempty"`
}

func (p FieldPatch) Apply(f *Field) {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Tags != nil {
		f.Tags = *p.Tags
	}
	if p.Size != nil {
		f.Size = *p.Size
	}
	if p.Unit != nil {
		f.Unit = *p.Unit
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.SoilType != nil {
		f.SoilType = *p.SoilType
	}
	if p.Location != nil {
		f.Location = *p.Location
	}
}

func (f *Field) SetOwner(uid string) { f.Owner = uid }
