package domain

// Business hours policy: appointments are booked inside the organization's
// fixed 08:00-22:00 window, defined in the head-office timezone.
const (
	BusinessTimezone  = "America/New_York"
	BusinessOpenHour  = 8
	BusinessCloseHour = 22
	SlotStepMinutes   = 15
)

// UpcomingLookaheadMinutes forward window used to detect imminent appointments
const UpcomingLookaheadMinutes = 15

// TopCustomersPlaces number of places in the customers-of-the-month ranking
const TopCustomersPlaces = 3

// Report month bounds (1 = January)
const (
	MinReportMonth = 1
	MaxReportMonth = 12
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
