package models

// Restaurant represents the core model for a dining establishment as
// delivered by the data source. Optional fields are pointers so that
// "absent" is distinguishable from a zero value; scorers degrade to
// documented defaults when a field is nil.
type Restaurant struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Cuisine         string   `json:"cuisine,omitempty"`
	CuisineType     string   `json:"cuisine_type,omitempty"`
	PriceLevel      string   `json:"price_level,omitempty"`
	Ambience        []string `json:"ambience,omitempty"`
	Description     string   `json:"description,omitempty"`
	SignatureDishes []string `json:"signature_dishes,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	IsOpen          *bool    `json:"is_open,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	Region          string   `json:"region,omitempty"`
	ImageURL        string   `json:"image_url,omitempty"`
}

// CuisineLabel returns the restaurant's cuisine, falling back to the
// secondary cuisine_type field when the primary label is absent.
func (r *Restaurant) CuisineLabel() string {
	if r.Cuisine != "" {
		return r.Cuisine
	}
	return r.CuisineType
}

// HasLocation reports whether both coordinates are present.
func (r *Restaurant) HasLocation() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// Open reports the open flag, treating absence as closed.
func (r *Restaurant) Open() bool {
	return r.IsOpen != nil && *r.IsOpen
}

// PricePreference is a diner's declared price tier.
type PricePreference string

const (
	PriceBudget  PricePreference = "budget"
	PriceMid     PricePreference = "mid"
	PricePremium PricePreference = "premium"
)

// SpiceLevel is a diner's declared spice tolerance.
type SpiceLevel string

const (
	SpiceMild   SpiceLevel = "mild"
	SpiceMedium SpiceLevel = "medium"
	SpiceHot    SpiceLevel = "hot"
)

// TasteProfile captures a diner's declared preferences. A nil profile is
// a first-class input everywhere: scorers fall back to a profile-agnostic
// baseline rather than erroring.
type TasteProfile struct {
	Cuisines        []string        `json:"cuisines"`
	PricePreference PricePreference `json:"price_preference"`
	SpiceLevel      SpiceLevel      `json:"spice_level"`
}

// Coordinates is a WGS84 latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TagCategory classifies a derived restaurant tag.
type TagCategory string

const (
	TagVibe     TagCategory = "vibe"
	TagDietary  TagCategory = "dietary"
	TagOccasion TagCategory = "occasion"
	TagPrice    TagCategory = "price"
	TagTime     TagCategory = "time"
	TagCuisine  TagCategory = "cuisine"
)

// Tag is a derived, ephemeral label with a 0-100 confidence. Tags are
// recomputed on demand and never persisted.
type Tag struct {
	Label      string      `json:"label"`
	Category   TagCategory `json:"category"`
	Confidence int         `json:"confidence"`
}

// NearbyRestaurant pairs a restaurant with the scores computed for one
// ranking call. Built fresh per call, never stored.
type NearbyRestaurant struct {
	Restaurant    Restaurant `json:"restaurant"`
	DistanceKm    float64    `json:"distance_km"`
	DistanceText  string     `json:"distance_text"`
	DistanceScore int        `json:"distance_score"`
	TasteScore    int        `json:"taste_score"`
	CombinedScore int        `json:"combined_score"`
	Reason        string     `json:"reason"`
}

// ReasonStrength grades how strongly a suggestion reason applies.
type ReasonStrength string

const (
	ReasonStrong ReasonStrength = "strong"
	ReasonMedium ReasonStrength = "medium"
	ReasonLight  ReasonStrength = "light"
)

// SuggestionReason is one structured explanation attached to a suggestion.
type SuggestionReason struct {
	Icon     string         `json:"icon"`
	Text     string         `json:"text"`
	Strength ReasonStrength `json:"strength"`
}

// SmartSuggestion pairs a restaurant with its taste score, derived tags
// and up to three explanation reasons.
type SmartSuggestion struct {
	Restaurant Restaurant         `json:"restaurant"`
	MatchScore int                `json:"match_score"`
	Tags       []Tag              `json:"tags"`
	Reasons    []SuggestionReason `json:"reasons"`
	IsTopPick  bool               `json:"is_top_pick"`
}
