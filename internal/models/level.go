package models

type Level struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	FoodCount   int    `json:"total_alimentos"`
}

// LevelFood is a food item annotated with whether it is the healthy choice
// for a particular level.
type LevelFood struct {
	ID       int64  `json:"id"`
	Name     string `json:"nombre"`
	Category string `json:"categoria"`
	Image    string `json:"imagen"`
	Correct  bool   `json:"es_correcto"`
}
