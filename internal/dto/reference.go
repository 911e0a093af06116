package dto

type PartyRequest struct {
	Name         string `json:"name" binding:"required"`
	Abbreviation string `json:"abbreviation" binding:"required"`
	FoundedYear  int    `json:"founded_year,omitempty"`
	SymbolURL    string `json:"symbol_url,omitempty"`
}

type PartyResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	FoundedYear  int    `json:"founded_year,omitempty"`
	SymbolURL    string `json:"symbol_url,omitempty"`
}

type PositionRequest struct {
	Title        string `json:"title" binding:"required"`
	Abbreviation string `json:"abbreviation" binding:"required"`
	LevelID      string `json:"level_id,omitempty"`
}

type PositionResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Abbreviation string `json:"abbreviation"`
	LevelID      string `json:"level_id,omitempty"`
}

type LevelRequest struct {
	Name string `json:"name" binding:"required"`
}

type LevelResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
