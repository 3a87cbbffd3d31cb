package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/inkwell/internal/models"
)

func TestEstimateKnownQuotes(t *testing.T) {
	tests := []struct {
		name string
		job  Job
		want int
	}{
		{
			name: "a4 bw plain",
			job:  Job{PaperSize: models.PaperA4, ColorMode: models.ColorModeBW, PageCount: 10, Binding: models.BindingNone, Urgency: models.UrgencyNormal},
			want: 20,
		},
		{
			name: "a4 color spiral urgent",
			job:  Job{PaperSize: models.PaperA4, ColorMode: models.ColorModeColor, PageCount: 10, Binding: models.BindingSpiral, Urgency: models.UrgencyUrgent},
			want: 195, // base 100 + spiral 50, +30%
		},
		{
			name: "a3 color stapler express",
			job:  Job{PaperSize: models.PaperA3, ColorMode: models.ColorModeColor, PageCount: 5, Binding: models.BindingStapler, Urgency: models.UrgencyExpress},
			want: 165, // base 100 + stapler 10, +50%
		},
		{
			name: "letter color",
			job:  Job{PaperSize: models.PaperLetter, ColorMode: models.ColorModeColor, PageCount: 4},
			want: 60,
		},
		{
			name: "legal bw",
			job:  Job{PaperSize: models.PaperLegal, ColorMode: models.ColorModeBW, PageCount: 3},
			want: 12,
		},
		{
			name: "spiral surcharge jumps past 50 pages",
			job:  Job{PaperSize: models.PaperA4, ColorMode: models.ColorModeBW, PageCount: 51, Binding: models.BindingSpiral},
			want: 202, // 102 base + 100 spiral
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Estimate(tt.job))
		})
	}
}

func TestEstimatePageCountFloor(t *testing.T) {
	zero := Estimate(Job{PaperSize: models.PaperA4, ColorMode: models.ColorModeBW, PageCount: 0})
	one := Estimate(Job{PaperSize: models.PaperA4, ColorMode: models.ColorModeBW, PageCount: 1})
	assert.Equal(t, one, zero, "page count below 1 is treated as 1")
}

func TestEstimateUnknownPaperOrColor(t *testing.T) {
	assert.Equal(t, 0, Estimate(Job{PaperSize: "B5", ColorMode: models.ColorModeBW, PageCount: 10}))
	assert.Equal(t, 0, Estimate(Job{PaperSize: models.PaperA4, ColorMode: "sepia", PageCount: 10}))

	// Binding surcharge still applies even with a zero base.
	assert.Equal(t, 10, Estimate(Job{PaperSize: "B5", ColorMode: "sepia", PageCount: 10, Binding: models.BindingStapler}))
}

func TestEstimateMonotonicInPageCount(t *testing.T) {
	prev := -1
	for pages := 1; pages <= 120; pages++ {
		got := Estimate(Job{
			PaperSize: models.PaperA3,
			ColorMode: models.ColorModeColor,
			PageCount: pages,
			Binding:   models.BindingSpiral,
			Urgency:   models.UrgencyExpress,
		})
		assert.GreaterOrEqual(t, got, prev, "pages=%d", pages)
		assert.GreaterOrEqual(t, got, 0)
		prev = got
	}
}

func TestEstimateDeterministic(t *testing.T) {
	job := Job{PaperSize: models.PaperA4, ColorMode: models.ColorModeColor, PageCount: 33, Binding: models.BindingSpiral, Urgency: models.UrgencyUrgent}
	first := Estimate(job)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Estimate(job))
	}
}
