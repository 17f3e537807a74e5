package domain

// Pricing constants
const (
	// FuelRatePerKm стоимость топлива за километр; поездка считается в обе стороны
	FuelRatePerKm = 8
)

// Slot window constants
const (
	SlotFirstHour  = 9  // первый слот дня начинается в 09:00
	SlotLastHour   = 18 // последний слот дня начинается в 18:00
	SlotWindowDays = 7  // сегодня + 6 дней
	SlotsPerDay    = SlotLastHour - SlotFirstHour + 1
)

// Business validation constants
const (
	MaxNotesLength         = 500
	MaxCustomerNameLength  = 100
	MaxCustomerPhoneLength = 20
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllStatuses все допустимые статусы бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// TerminalStatuses статусы, после которых бронирование больше не меняется
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}
