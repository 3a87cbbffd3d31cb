package models

// Print job paper sizes.
const (
	PaperA4     = "A4"
	PaperA3     = "A3"
	PaperLetter = "Letter"
	PaperLegal  = "Legal"
)

// Print job color modes.
const (
	ColorModeBW    = "bw"
	ColorModeColor = "color"
)

// Print job bindings.
const (
	BindingNone    = "none"
	BindingSpiral  = "spiral"
	BindingStapler = "stapler"
)

// Print job urgency levels.
const (
	UrgencyNormal  = "normal"
	UrgencyUrgent  = "urgent"
	UrgencyExpress = "express"
)

// Print order statuses.
const (
	PrintStatusPending   = "pending"
	PrintStatusConfirmed = "confirmed"
	PrintStatusPrinting  = "printing"
	PrintStatusCompleted = "completed"
	PrintStatusCancelled = "cancelled"
)

// ValidPaperSize reports whether s is a known paper size.
func ValidPaperSize(s string) bool {
	switch s {
	case PaperA4, PaperA3, PaperLetter, PaperLegal:
		return true
	}
	return false
}

// ValidColorMode reports whether s is a known color mode.
func ValidColorMode(s string) bool {
	return s == ColorModeBW || s == ColorModeColor
}

// ValidBinding reports whether s is a known binding.
func ValidBinding(s string) bool {
	return s == BindingNone || s == BindingSpiral || s == BindingStapler
}

// ValidUrgency reports whether s is a known urgency level.
func ValidUrgency(s string) bool {
	return s == UrgencyNormal || s == UrgencyUrgent || s == UrgencyExpress
}

// ValidPrintStatus reports whether s is a known print order status.
func ValidPrintStatus(s string) bool {
	switch s {
	case PrintStatusPending, PrintStatusConfirmed, PrintStatusPrinting,
		PrintStatusCompleted, PrintStatusCancelled:
		return true
	}
	return false
}

// PrintOrder is an uploaded print job with its quote.
type PrintOrder struct {
	BaseModel
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	PaperSize    string `json:"paper_size"`
	ColorMode    string `json:"color_mode"`
	PageCount    int    `json:"page_count"`
	Binding      string `gorm:"default:none" json:"binding"`
	Urgency      string `gorm:"default:normal" json:"urgency"`
	Instructions string `gorm:"size:500" json:"instructions"`

	FileURL   string `json:"file_url,omitempty"`
	FileName  string `json:"file_name,omitempty"`
	FileSize  int64  `json:"file_size,omitempty"`
	FileMime  string `json:"file_mime,omitempty"`
	StorageID string `json:"storage_id,omitempty"`

	EstimatedCost int    `json:"estimated_cost"`
	FinalCost     *int   `json:"final_cost,omitempty"`
	Status        string `gorm:"default:pending" json:"status"`
}
