package dto

// Response shapes are the serializer's allow-lists: a field absent here can
// never reach a client no matter what the assembler produced.

type ContactResponse struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type SocialResponse struct {
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Website   string `json:"website,omitempty"`
}

type SourceCategoriesResponse struct {
	Party     *string  `json:"party,omitempty"`
	Positions []string `json:"positions"`
	Levels    []string `json:"levels"`
}

type PromiseResponse struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

type AchievementResponse struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Category    string `json:"category,omitempty"`
}

type PoliticianResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Biography   string `json:"biography,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Education   string `json:"education,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`

	PartyID        string   `json:"party_id,omitempty"`
	PositionIDs    []string `json:"position_ids,omitempty"`
	ConstituencyID string   `json:"constituency_id,omitempty"`

	Contact ContactResponse `json:"contact"`
	Social  SocialResponse  `json:"social"`

	AverageRating float64 `json:"average_rating"`
	TotalRatings  int     `json:"total_ratings"`

	SourceCategories SourceCategoriesResponse `json:"source_categories"`
	Promises         []PromiseResponse        `json:"promises"`
	Achievements     []AchievementResponse    `json:"achievements"`
}

type PoliticianListResponse struct {
	Politicians []PoliticianResponse `json:"politicians"`
	Count       int                  `json:"count"`
	Page        int64                `json:"page"`
	PageSize    int64                `json:"page_size"`
}
