package presentation

const (
	ItemNameParam = "itemName"
	ImagePath     = "/GetImageFunction"
	// APIImagePath is the same endpoint under the function host's default
	// "api" route prefix.
	APIImagePath = "/api/GetImageFunction"
	HealthPath   = "/health"

	MsgImageNotFound = "Image not found"
	MsgInternalError = "Internal server error"
)
