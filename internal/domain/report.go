package domain

import (
	"math"
	"sort"
)

type CategoryOccupancy struct {
	Category StandCategory `json:"category"`
	Total    int           `json:"total"`
	Taken    int           `json:"taken"`
}

// Summary is the office dashboard view of the market.
type Summary struct {
	StandCount          int                 `json:"standCount"`
	ReservationCount    int                 `json:"reservationCount"`
	TotalRevenue        int                 `json:"totalRevenue"`
	PaidIncome          int                 `json:"paidIncome"`
	PendingIncome       int                 `json:"pendingIncome"`
	OverdueIncome       int                 `json:"overdueIncome"`
	PaidCount           int                 `json:"paidCount"`
	UnpaidCount         int                 `json:"unpaidCount"`
	OverdueCount        int                 `json:"overdueCount"`
	OccupancyRate       int                 `json:"occupancyRate"`
	StandsByStatus      map[StandStatus]int `json:"standsByStatus"`
	OccupancyByCategory []CategoryOccupancy `json:"occupancyByCategory"`
}

func Summarize(stands []Stand, reservations []Reservation) Summary {
	sum := Summary{
		StandCount:       len(stands),
		ReservationCount: len(reservations),
		StandsByStatus:   map[StandStatus]int{},
	}

	for _, r := range reservations {
		sum.TotalRevenue += r.TotalAmount
		switch r.PaymentStatus {
		case PaymentPaid:
			sum.PaidCount++
			sum.PaidIncome += r.TotalAmount
		case PaymentUnpaid:
			sum.UnpaidCount++
			sum.PendingIncome += r.TotalAmount
		case PaymentOverdue:
			sum.OverdueCount++
			sum.OverdueIncome += r.TotalAmount
		}
	}

	byCategory := map[StandCategory]*CategoryOccupancy{}
	taken := 0
	for _, s := range stands {
		sum.StandsByStatus[s.Status]++

		occ, ok := byCategory[s.Category]
		if !ok {
			occ = &CategoryOccupancy{Category: s.Category}
			byCategory[s.Category] = occ
		}
		occ.Total++
		if s.Status == StandOccupied || s.Status == StandReserved {
			occ.Taken++
			taken++
		}
	}

	if len(stands) > 0 {
		sum.OccupancyRate = int(math.Round(float64(taken) * 100 / float64(len(stands))))
	}

	sum.OccupancyByCategory = make([]CategoryOccupancy, 0, len(byCategory))
	for _, occ := range byCategory {
		sum.OccupancyByCategory = append(sum.OccupancyByCategory, *occ)
	}
	sort.Slice(sum.OccupancyByCategory, func(i, j int) bool {
		return sum.OccupancyByCategory[i].Category < sum.OccupancyByCategory[j].Category
	})

	return sum
}
