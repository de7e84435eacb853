package models

// ═══════════════════════════════════════════════════════════
// Storefront Response Models (thin, view-shaped)
// ═══════════════════════════════════════════════════════════

// HighlightSegment is one slice of a display string, tagged for
// emphasized rendering when it matched the search query.
type HighlightSegment struct {
	Text    string `json:"text"`
	Matched bool   `json:"matched"`
}

// MenuProduct is one card on the menu grid.
type MenuProduct struct {
	ID            int                `json:"id"`
	Category      string             `json:"category"`
	Name          string             `json:"name"`
	NameSegments  []HighlightSegment `json:"name_segments"`
	ImageURL      string             `json:"image_url"`
	StartingFrom  float64            `json:"starting_from"`
	StartingLabel string             `json:"starting_label"`
	CurrencyLabel string             `json:"currency_label"`
}

// MenuResponse is the full payload for the menu view: the visible
// subset, per-category counts, and the loading flag.
type MenuResponse struct {
	Products      []MenuProduct  `json:"products"`
	Counts        map[string]int `json:"counts"`
	Total         int            `json:"total"`
	IsLoading     bool           `json:"is_loading"`
	EmptyTitle    string         `json:"empty_title,omitempty"`
	EmptySubtitle string         `json:"empty_subtitle,omitempty"`
}

// PricedOption is a product option with its computed display price.
type PricedOption struct {
	Label         string  `json:"label"`
	BasePrice     float64 `json:"base_price"`
	DisplayPrice  float64 `json:"display_price"`
	CurrencyLabel string  `json:"currency_label"`
}

// ExtraChocolateOption mirrors an alternate-variant option. Display is
// the formatted price or a pending placeholder when no price is set.
type ExtraChocolateOption struct {
	Label   string `json:"label"`
	Display string `json:"display"`
}

// ProductDetail is the payload for the product detail view.
type ProductDetail struct {
	ID                   int                    `json:"id"`
	Category             string                 `json:"category"`
	Name                 string                 `json:"name"`
	Description          string                 `json:"description"`
	ImageURL             string                 `json:"image_url"`
	Options              []PricedOption         `json:"options"`
	Notes                []string               `json:"notes,omitempty"`
	NoNotesMessage       string                 `json:"no_notes_message,omitempty"`
	Surcharge            int                    `json:"surcharge"`
	ExtrasAvailable      bool                   `json:"extras_available"`
	ExtrasActive         bool                   `json:"extras_active"`
	ExtrasToggleLabel    string                 `json:"extras_toggle_label,omitempty"`
	HasExtraChocolate    bool                   `json:"has_extra_chocolate"`
	ChocolateToggleLabel string                 `json:"chocolate_toggle_label,omitempty"`
	ExtraChocolate       []ExtraChocolateOption `json:"extra_chocolate,omitempty"`
}

// CategoryInfo is one entry of the category sidebar.
type CategoryInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}
