package entities

import "time"

type CropStatus string

const (
	CropPlanted   CropStatus = "planted"
	CropGrowing   CropStatus = "growing"
	CropHarvested CropStatus = "harvested"
	CropFailed    CropStatus = "failed"
)

var CropStatuses = []CropStatus{CropPlanted, CropGrowing, CropHarvested, CropFailed}

func (s CropStatus) Valid() bool {
	for _, v := range CropStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Crop struct {
	ID              int        `gorm:"primaryKey" json:"id"`
	Name            string     `json:"name"`
	Tags            string     `json:"tags"`
	Owner           string     `json:"owner" gorm:"index"`
	Variety         string     `json:"variety"`
	PlantingDate    string     `json:"planting_date"`    // YYYY-MM-DD
	ExpectedHarvest string     `json:"expected_harvest"` // YYYY-MM-DD
	ActualHarvest   *string    `json:"actual_harvest"`
	Yield           float64    `json:"yield"` // kg
	Status          CropStatus `json:"status" gorm:"index"`
	FieldID         int        `json:"field_id" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Crop) GetID() int   { return c.ID }
func (c *Crop) SetID(id int) { c.ID = id }

type CropPatch struct {
	Name            *string     `json:"name,omitempty"`
	Tags            *string     `json:"tags,omitempty"`
	Variety         *string     `json:"variety,omitempty"`
	PlantingDate    *string     `json:"planting_date,omitempty"`
	ExpectedHarvest *string     `json:"expected_harvest,omitempty"`
	ActualHarvest   *string     `json:"actual_harvest,omitempty"`
	Yield           *float64    `json:"yield,omitempty"`
	Status          *CropStatus `json:"status,omitempty"`
	FieldID         *int        `json:"field_id,omitempty"`
}

func (p CropPatch) Apply(c *Crop) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Tags != nil {
		c.Tags = *p.Tags
	}
	if p.Variety != nil {
		c.Variety = *p.Variety
	}
	if p.PlantingDate != nil {
		c.PlantingDate = *p.PlantingDate
	}
	if p.ExpectedHarvest != nil {
		c.ExpectedHarvest = *p.ExpectedHarvest
	}
	if p.ActualHarvest != nil {
		v := *p.ActualHarvest
		c.ActualHarvest = &v
	}
	if p.Yield != nil {
		c.Yield = *p.Yield
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.FieldID != nil {
		c.FieldID = *p.FieldID
	}
}

func (c *Crop) SetOwner(uid string) { c.Owner = uid }
