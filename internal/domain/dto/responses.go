package dto

type ImageURL struct {
	ImageURL string `json:"imageUrl"`
}

type Error struct {
	Error string `json:"error"`
}
