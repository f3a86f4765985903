package models

import "time"

// Player is a registered jugador. MaxScore only ever grows.
type Player struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	MaxScore  int       `json:"puntuacion_maxima"`
	CreatedAt time.Time `json:"creado_en"`
}

// RankingEntry is one row of the player ranking.
type RankingEntry struct {
	ID       int64  `json:"id"`
	Name     string `json:"nombre"`
	MaxScore int    `json:"puntuacion_maxima"`
}
