package model

// Resource is a static study link shown as a clickable card
type Resource struct {
	Title    string `json:"title" bson:"title"`
	Link     string `json:"link" bson:"link"`
	Position int    `json:"position" bson:"position"` // display order
}
