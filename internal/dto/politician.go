package dto

type ContactPayload struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type SocialPayload struct {
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Website   string `json:"website,omitempty"`
}

type PromisePayload struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

type AchievementPayload struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Category    string `json:"category,omitempty"`
}

// CreatePoliticianRequest carries the politician fields plus the optional
// satellite arrays written in the same transaction. Reference ids are plain
// hex strings; their targets are not checked for existence.
type CreatePoliticianRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	Biography   string `json:"biography,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Education   string `json:"education,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`

	PartyID        string   `json:"party_id,omitempty"`
	PositionIDs    []string `json:"position_ids,omitempty"`
	ConstituencyID string   `json:"constituency_id,omitempty"`

	Contact ContactPayload `json:"contact,omitempty"`
	Social  SocialPayload  `json:"social,omitempty"`

	Promises     []PromisePayload     `json:"promises,omitempty"`
	Achievements []AchievementPayload `json:"achievements,omitempty"`
}

// UpdatePoliticianRequest only ever touches the politician document;
// satellites have no update path here.
type UpdatePoliticianRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	Biography   string `json:"biography,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Education   string `json:"education,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`

	PartyID        string   `json:"party_id,omitempty"`
	PositionIDs    []string `json:"position_ids,omitempty"`
	ConstituencyID string   `json:"constituency_id,omitempty"`

	Contact ContactPayload `json:"contact,omitempty"`
	Social  SocialPayload  `json:"social,omitempty"`
}
