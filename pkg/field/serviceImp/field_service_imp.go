package serviceImp

import (
	"context"
	"strings"

	"farmdash/entities"
	"farmdash/pkg/apperr"
	repo "farmdash/pkg/field/repository"
	"farmdash/pkg/field/service"
)

type fieldSvc struct{ r repo.FieldRepository }

func NewFieldService(r repo.FieldRepository) service.FieldService { return &fieldSvc{r} }

func (s *fieldSvc) List(ctx context.Context, q string) ([]entities.Field, error) {
	all, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return all, nil
	}
	out := make([]entities.Field, 0, len(all))
	for _, f := range all {
		if Matches(f, q) {
			out = append(out, f)
		}
	}
	return out, nil
}

// Matches reports whether the lower-cased term appears in the field's name,
// location or status.
func Matches(f entities.Field, term string) bool {
	return strings.Contains(strings.ToLower(f.Name), term) ||
		strings.Contains(strings.ToLower(f.Location), term) ||
		strings.Contains(strings.ToLower(string(f.Status)), term)
}

func (s *fieldSvc) Get(ctx context.Context, id int) (*entities.Field, error) {
	return s.r.FindByID(ctx, id)
}

func (s *fieldSvc) Create(ctx context.Context, f *entities.Field) (*entities.Field, error) {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return nil, apperr.Invalid("field name is required")
	}
	if f.Status == "" {
		f.Status = entities.FieldHealthy
	}
	if f.Unit == "" {
		f.Unit = "acres"
	}
	if err := validate(f.Status, f.Size); err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *fieldSvc) Update(ctx context.Context, id int, p entities.FieldPatch) (*entities.Field, error) {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, apperr.Invalid("field name cannot be empty")
		}
		p.Name = &name
	}
	status := entities.FieldHealthy
	if p.Status != nil {
		status = *p.Status
	}
	size := 0.0
	if p.Size != nil {
		size = *p.Size
	}
	if err := validate(status, size); err != nil {
		return nil, err
	}
	return s.r.Update(ctx, id, p)
}

func (s *fieldSvc) Delete(ctx context.Context, id int) (*entities.Field, error) {
	return s.r.Delete(ctx, id)
}

func validate(status entities.FieldStatus, size float64) error {
	if !status.Valid() {
		return apperr.Invalid("unknown field status " + string(status))
	}
	if size < 0 {
		return apperr.Invalid("field size cannot be negative")
	}
	return nil
}
