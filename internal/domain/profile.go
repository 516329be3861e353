package domain

// Profile is the single organiser that owns events.
type Profile struct {
	ID           int64
	Name         string
	Email        string
	Organization string
}
