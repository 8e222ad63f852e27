package models

// Location is one side of an origin/destination pair
type Location struct {
	Code        string `json:"code"`
	DisplayName string `json:"displayName"`
	URL         string `json:"url"`
}

// OriginAndDestinationPair describes the endpoints of a single leg
type OriginAndDestinationPair struct {
	Destination     Location `json:"destination"`
	DestinationCity string   `json:"destinationCity"`
	Origin          Location `json:"origin"`
	OriginCity      string   `json:"originCity"`
}

// Segment is one leg of a journey. ID is unique within a booking and is
// used as the stable list key.
type Segment struct {
	ID                       int                      `json:"id"`
	OriginAndDestinationPair OriginAndDestinationPair `json:"originAndDestinationPair"`
}

// BookingRecord is the full reservation payload returned by the remote source
type BookingRecord struct {
	ShipReference          string    `json:"shipReference"`
	ShipToken              string    `json:"shipToken"`
	CanIssueTicketChecking bool      `json:"canIssueTicketChecking"`
	ExpiryTime             Timestamp `json:"expiryTime"`
	Duration               int       `json:"duration"`
	Segments               []Segment `json:"segments"`
}

// Clone returns a deep copy so callers can't mutate shared fixture data
func (b BookingRecord) Clone() BookingRecord {
	if b.Segments != nil {
		segments := make([]Segment, len(b.Segments))
		copy(segments, b.Segments)
		b.Segments = segments
	}
	return b
}
