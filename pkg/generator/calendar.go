package generator

import (
	"fmt"
	"time"

	"github.com/swaslabs/ledgen/pkg/models"
)

var (
	promoDescriptions = []string{"Rainy season promo", "Weekend special", "Back-to-school"}
	fullDayNotes      = []string{"Holiday", "Maintenance", "Inventory"}
	partialDayNotes   = []string{"Partial maintenance", "Team meeting", "Short holiday"}
)

// buildCalendars synthesizes the promo and unavailability calendars, per
// branch, before any transaction attempt. Their outputs are read-only for the
// rest of the run.
func (g *Generator) buildCalendars() {
	promoIdx := 1
	unavIdx := 1

	for _, branch := range g.cat.Branches {
		// 3-6 promo windows of 1-7 contiguous days, clipped at the window end.
		numPromos := g.randInt(3, 6)
		for i := 0; i < numPromos; i++ {
			start := g.startDate.AddDate(0, 0, g.rng.Intn(windowDays+1))
			length := g.randInt(1, 7)

			dates := make([]string, 0, length)
			for d := 0; d < length; d++ {
				day := start.AddDate(0, 0, d)
				if day.After(g.endDate) {
					break
				}
				dates = append(dates, day.Format(dateLayout))
			}

			g.promos = append(g.promos, models.Promo{
				PromoID:          promoID(promoIdx),
				PromoTitle:       fmt.Sprintf("%s Promo %d", branch.Code, promoIdx),
				PromoDescription: g.choice(promoDescriptions),
				PromoDates:       dates,
				PromoDuration:    fmt.Sprintf("%s - %s", dates[0], dates[len(dates)-1]),
				BranchID:         branch.ID,
			})
			promoIdx++
		}

		// 0-2 unavailability events per month overlapping the window.
		month := time.Date(g.startDate.Year(), g.startDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		for !month.After(g.endDate) {
			num := g.weightedInt([]int{0, 1, 2}, []float64{0.6, 0.3, 0.1})
			if num == 0 {
				month = month.AddDate(0, 1, 0)
				continue
			}

			firstDay := maxDate(g.startDate, month)
			lastDay := minDate(g.endDate, month.AddDate(0, 1, -1))
			span := int(lastDay.Sub(firstDay).Hours() / 24)

			for i := 0; i < num; i++ {
				day := firstDay.AddDate(0, 0, g.rng.Intn(span+1))
				typ := g.weighted(
					[]string{models.FullDay, models.PartialDay},
					[]float64{0.3, 0.7})

				ua := models.Unavailability{
					UnavailabilityID: unavailabilityID(unavIdx),
					BranchID:         branch.ID,
					DateUnavailable:  day.Format(dateLayout),
					Type:             typ,
				}
				if typ == models.PartialDay {
					startHour := g.randInt(8, 14)
					endHour := startHour + g.randInt(2, 6)
					if endHour > 18 {
						endHour = 18
					}
					ts := fmt.Sprintf("%02d:00", startHour)
					te := fmt.Sprintf("%02d:00", endHour)
					ua.TimeStart = &ts
					ua.TimeEnd = &te
					ua.Note = g.choice(partialDayNotes)
				} else {
					ua.Note = g.choice(fullDayNotes)
				}

				g.unavailability = append(g.unavailability, ua)
				unavIdx++
			}
			month = month.AddDate(0, 1, 0)
		}
	}

	g.logger.Debug("calendars built", "promos", len(g.promos), "unavailability", len(g.unavailability))
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
