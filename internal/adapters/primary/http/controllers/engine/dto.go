package engineController

import (
	"fmt"
	"time"

	"github.com/admin/tg-bots/jyotish-engine/internal/domain"
)

const asOfDateLayout = "2006-01-02"

// RulesRequest тело запроса оценки правил
type RulesRequest struct {
	Birth domain.BirthDetails `json:"birth"`
	// AsOfDate дата оценки транзитных правил (Саде Сати); без неё
	// транзитные правила пропускаются
	AsOfDate *string `json:"as_of_date,omitempty"`
}

// asOfTime дата оценки как момент UTC
func (r RulesRequest) asOfTime() (*time.Time, error) {
	if r.AsOfDate == nil {
		return nil, nil
	}
	t, err := time.Parse(asOfDateLayout, *r.AsOfDate)
	if err != nil {
		return nil, domain.NewValidationError("as_of_date", fmt.Sprintf("expected %s format: %v", asOfDateLayout, err))
	}
	return &t, nil
}

// MatchRequest тело запроса Аштакут-милана; порядок сторон значим
type MatchRequest struct {
	Bride domain.BirthDetails `json:"bride"`
	Groom domain.BirthDetails `json:"groom"`
}
