// Package pricing computes print-job quotes.
package pricing

import (
	"math"

	"github.com/example/inkwell/internal/models"
)

// Per-page rates in currency units, keyed by paper size and color mode.
var pageRates = map[string]map[string]float64{
	models.PaperA4:     {models.ColorModeColor: 10, models.ColorModeBW: 2},
	models.PaperA3:     {models.ColorModeColor: 20, models.ColorModeBW: 5},
	models.PaperLetter: {models.ColorModeColor: 15, models.ColorModeBW: 4},
	models.PaperLegal:  {models.ColorModeColor: 15, models.ColorModeBW: 4},
}

// Job describes the parameters of a print job to be quoted.
type Job struct {
	PaperSize string
	ColorMode string
	PageCount int
	Binding   string
	Urgency   string
}

// Estimate returns the quoted cost for a job, rounded to the nearest integer.
// A page count below 1 is treated as 1. An unrecognized paper size or color
// mode contributes zero base cost rather than failing.
func Estimate(job Job) int {
	pages := job.PageCount
	if pages < 1 {
		pages = 1
	}

	total := pageRates[job.PaperSize][job.ColorMode] * float64(pages)

	switch job.Binding {
	case models.BindingSpiral:
		if pages <= 50 {
			total += 50
		} else {
			total += 100
		}
	case models.BindingStapler:
		total += 10
	}

	// Urgency applies to base plus binding, never compounded.
	switch job.Urgency {
	case models.UrgencyUrgent:
		total += total * 0.30
	case models.UrgencyExpress:
		total += total * 0.50
	}

	return int(math.Round(total))
}
