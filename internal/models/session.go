package models

import "time"

// Session is one played game (partida). A nil EndedAt means the session is
// still active; once set it never changes.
type Session struct {
	ID             int64      `json:"id"`
	PlayerID       int64      `json:"jugador_id"`
	StartedAt      time.Time  `json:"fecha_inicio"`
	EndedAt        *time.Time `json:"fecha_fin"`
	MaxLevel       int        `json:"nivel_maximo_alcanzado"`
	TotalScore     int        `json:"puntuacion_total"`
	InitialLives   int        `json:"vidas_iniciales"`
	RemainingLives int        `json:"vidas_restantes"`
}

func (s Session) Active() bool {
	return s.EndedAt == nil
}

// Answer is an immutable respuesta row.
type Answer struct {
	ID             int64     `json:"id"`
	SessionID      int64     `json:"partida_id"`
	LevelID        int64     `json:"nivel_id"`
	FoodID         int64     `json:"alimento_id"`
	Correct        bool      `json:"correcta"`
	ElapsedSeconds float64   `json:"tiempo"`
	Points         int       `json:"puntos_obtenidos"`
	CreatedAt      time.Time `json:"creado_en"`
}

// AnswerResult is the session state right after an answer was recorded.
type AnswerResult struct {
	Points         int `json:"puntos_obtenidos"`
	TotalScore     int `json:"puntuacion_total"`
	RemainingLives int `json:"vidas_restantes"`
}
