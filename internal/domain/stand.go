package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidStatusTransition = errors.New("invalid status transition")

type StandType string

const (
	StandPermanent StandType = "PERMANENT"
	StandTemporary StandType = "TEMPORARY"
	StandMobile    StandType = "MOBILE"
)

// Prefix is the first segment of a stand id.
func (t StandType) Prefix() string {
	switch t {
	case StandTemporary:
		return "T"
	case StandMobile:
		return "M"
	default:
		return "S"
	}
}

type StandCategory string

const (
	CategoryFood         StandCategory = "SPOZYWCZE"
	CategoryIndustrial   StandCategory = "PRZEMYSLOWE"
	CategoryAgricultural StandCategory = "ROLNO_OGRODNICZE"
	CategoryCrafts       StandCategory = "RZEMIESLNICZE"
	CategoryAntiques     StandCategory = "ANTYKWARIAT"
	CategoryAnimals      StandCategory = "ZWIERZECE"
	CategoryGastronomy   StandCategory = "GASTRONOMICZNE"
)

var StandCategories = []StandCategory{
	CategoryFood,
	CategoryIndustrial,
	CategoryAgricultural,
	CategoryCrafts,
	CategoryAntiques,
	CategoryAnimals,
	CategoryGastronomy,
}

// CategoryOffer is what the market charges for a stand of a given category.
type CategoryOffer struct {
	Code     string
	Category StandCategory
	Type     StandType
	PriceDay int
}

// Offers lists the categories stands are created with.
var Offers = []CategoryOffer{
	{Code: "SP", Category: CategoryFood, Type: StandPermanent, PriceDay: 60},
	{Code: "RZ", Category: CategoryCrafts, Type: StandPermanent, PriceDay: 50},
	{Code: "GA", Category: CategoryGastronomy, Type: StandTemporary, PriceDay: 100},
	{Code: "RO", Category: CategoryAgricultural, Type: StandMobile, PriceDay: 30},
}

func OfferByCode(code string) (CategoryOffer, bool) {
	for _, o := range Offers {
		if o.Code == code {
			return o, true
		}
	}

	return CategoryOffer{}, false
}

type StandStatus string

const (
	StandAvailable   StandStatus = "AVAILABLE"
	StandOccupied    StandStatus = "OCCUPIED"
	StandReserved    StandStatus = "RESERVED"
	StandMaintenance StandStatus = "MAINTENANCE"
)

func (s StandStatus) IsValid() bool {
	switch s {
	case StandAvailable, StandOccupied, StandReserved, StandMaintenance:
		return true
	}
	return false
}

type Location struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Stand struct {
	ID       string        `json:"id"`
	Type     StandType     `json:"type"`
	Category StandCategory `json:"category"`
	Number   int           `json:"number"`
	Location Location      `json:"location"`
	PriceDay int           `json:"priceDay"`
	Status   StandStatus   `json:"status"`
}

// NewStand builds an AVAILABLE stand of the offered category at loc.
func NewStand(offer CategoryOffer, number int, loc Location) Stand {
	return Stand{
		ID:       StandID(offer, number),
		Type:     offer.Type,
		Category: offer.Category,
		Number:   number,
		Location: loc,
		PriceDay: offer.PriceDay,
		Status:   StandAvailable,
	}
}

func StandID(offer CategoryOffer, number int) string {
	return fmt.Sprintf("%s-%s-%d", offer.Type.Prefix(), offer.Code, number)
}

func (s *Stand) IsClaimable() bool {
	return s.Status == StandAvailable
}

// TransitionTo applies a manual status change. Reserving goes through a
// reservation claim only, so AVAILABLE -> RESERVED is rejected here.
func (s *Stand) TransitionTo(next StandStatus) error {
	if !next.IsValid() {
		return fmt.Errorf("%w: unknown stand status %q", ErrInvalidStatusTransition, next)
	}
	if s.Status == next {
		return nil
	}

	allowed := false
	switch next {
	case StandMaintenance:
		allowed = true
	case StandOccupied:
		allowed = s.Status == StandReserved
	case StandAvailable:
		allowed = s.Status == StandReserved || s.Status == StandOccupied || s.Status == StandMaintenance
	}

	if !allowed {
		return fmt.Errorf("%w: stand %s %s -> %s", ErrInvalidStatusTransition, s.ID, s.Status, next)
	}
	s.Status = next

	return nil
}
