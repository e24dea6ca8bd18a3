package models

type TourSource string

const (
	TourSourceEvent   TourSource = "event"
	TourSourceCurated TourSource = "curated"
)

type Tour struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	MinPrice     *float64   `json:"min_price,omitempty"`
	MaxPrice     *float64   `json:"max_price,omitempty"`
	City         string     `json:"city"`
	Country      string     `json:"country"`
	Type         string     `json:"type"`
	DurationDays int        `json:"duration_days"`
	PhotoURL     string     `json:"photo_url,omitempty"`
	Venue        string     `json:"venue,omitempty"`
	Address      string     `json:"address,omitempty"`
	Timezone     string     `json:"timezone,omitempty"`
	StartDate    string     `json:"start_date,omitempty"`
	EndDate      string     `json:"end_date,omitempty"`
	StartTime    string     `json:"start_time,omitempty"`
	TicketURL    string     `json:"ticket_url,omitempty"`
	Currency     string     `json:"currency,omitempty"`
	ExternalID   string     `json:"external_id,omitempty"`
	Lat          string     `json:"lat,omitempty"`
	Lng          string     `json:"lng,omitempty"`
	Categories   []string   `json:"categories"`
	Source       TourSource `json:"source"`
}

// UnitPrice is the per-passenger price: the lower bound of a price range wins
// over the upper bound, which wins over the anchor price.
func (t Tour) UnitPrice() float64 {
	switch {
	case t.MinPrice != nil:
		return *t.MinPrice
	case t.MaxPrice != nil:
		return *t.MaxPrice
	default:
		return t.Price
	}
}
