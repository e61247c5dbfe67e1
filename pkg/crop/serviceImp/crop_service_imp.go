package serviceImp

import (
	"context"
	"strings"

	"farmdash/entities"
	"farmdash/pkg/apperr"
	repo "farmdash/pkg/crop/repository"
	"farmdash/pkg/crop/service"
	fieldrepo "farmdash/pkg/field/repository"
)

// UnknownField is shown for crops whose field reference does not resolve.
const UnknownField = "Unknown Field"

type cropSvc struct {
	r      repo.CropRepository
	fields fieldrepo.FieldRepository
}

func NewCropService(r repo.CropRepository, fields fieldrepo.FieldRepository) service.CropService {
	return &cropSvc{r: r, fields: fields}
}

func (s *cropSvc) List(ctx context.Context, q string) ([]entities.Crop, error) {
	all, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return all, nil
	}
	fields, err := s.fields.List(ctx)
	if err != nil {
		return nil, err
	}
	names := FieldNames(fields)
	out := make([]entities.Crop, 0, len(all))
	for _, c := range all {
		if Matches(c, FieldName(names, c.FieldID), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

// FieldNames indexes field names by id.
func FieldNames(fields []entities.Field) map[int]string {
	m := make(map[int]string, len(fields))
	for _, f := range fields {
		m[f.ID] = f.Name
	}
	return m
}

func FieldName(names map[int]string, id int) string {
	if n, ok := names[id]; ok {
		return n
	}
	return UnknownField
}

// Matches reports whether the lower-cased term appears in the crop's variety,
// its field's name or its status.
func Matches(c entities.Crop, fieldName, term string) bool {
	return strings.Contains(strings.ToLower(c.Variety), term) ||
		strings.Contains(strings.ToLower(fieldName), term) ||
		strings.Contains(strings.ToLower(string(c.Status)), term)
}

func (s *cropSvc) ListByField(ctx context.Context, fieldID int) ([]entities.Crop, error) {
	return s.r.ListByField(ctx, fieldID)
}

func (s *cropSvc) Get(ctx context.Context, id int) (*entities.Crop, error) {
	return s.r.FindByID(ctx, id)
}

func (s *cropSvc) Create(ctx context.Context, c *entities.Crop) (*entities.Crop, error) {
	c.Variety = strings.TrimSpace(c.Variety)
	if c.Variety == "" {
		return nil, apperr.Invalid("crop variety is required")
	}
	if c.Name == "" {
		c.Name = c.Variety
	}
	if c.Status == "" {
		c.Status = entities.CropPlanted
	}
	if c.FieldID <= 0 {
		return nil, apperr.Invalid("crop field_id is required")
	}
	harvest := ""
	if c.ActualHarvest != nil {
		harvest = *c.ActualHarvest
	}
	if err := validate(c.Status, c.Yield, c.PlantingDate, c.ExpectedHarvest, harvest); err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *cropSvc) Update(ctx context.Context, id int, p entities.CropPatch) (*entities.Crop, error) {
	status, yield := entities.CropPlanted, 0.0
	if p.Status != nil {
		status = *p.Status
	}
	if p.Yield != nil {
		yield = *p.Yield
	}
	if p.Variety != nil {
		variety := strings.TrimSpace(*p.Variety)
		if variety == "" {
			return nil, apperr.Invalid("crop variety cannot be empty")
		}
		p.Variety = &variety
	}
	if err := validate(status, yield, deref(p.PlantingDate), deref(p.ExpectedHarvest), deref(p.ActualHarvest)); err != nil {
		return nil, err
	}
	return s.r.Update(ctx, id, p)
}

func (s *cropSvc) Delete(ctx context.Context, id int) (*entities.Crop, error) {
	return s.r.Delete(ctx, id)
}

func validate(status entities.CropStatus, yield float64, dates ...string) error {
	if !status.Valid() {
		return apperr.Invalid("unknown crop status " + string(status))
	}
	if yield < 0 {
		return apperr.Invalid("crop yield cannot be negative")
	}
	for _, d := range dates {
		if !entities.ValidDate(d) {
			return apperr.Invalid("invalid date " + d + ", want YYYY-MM-DD")
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
