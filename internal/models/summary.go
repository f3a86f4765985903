package models

import "time"

// ResultSummary is written exactly once per session, when it is finalized.
// Position is the session's rank at that moment.
type ResultSummary struct {
	ID              int64     `json:"id"`
	PlayerID        int64     `json:"jugador_id"`
	PlayerName      string    `json:"jugador_nombre"`
	SessionID       int64     `json:"partida_id"`
	MaxLevel        int       `json:"nivel_maximo"`
	TotalScore      int       `json:"puntuacion_total"`
	LivesLost       int       `json:"vidas_perdidas"`
	AccuracyPct     int       `json:"efectividad_porcentaje"`
	Position        int       `json:"posicion"`
	DurationSeconds int       `json:"duracion_segundos"`
	CreatedAt       time.Time `json:"creado_en"`
}

// FinalizeResult reports the outcome of a finalize call. AlreadyFinalized is
// set when the session had been closed by an earlier call; Summary then holds
// the summary written at that time.
type FinalizeResult struct {
	Summary          *ResultSummary `json:"resumen"`
	AlreadyFinalized bool           `json:"ya_finalizada"`
}

// PodiumEntry is one row of the podium.
type PodiumEntry struct {
	Name     string `json:"nombre"`
	Score    int    `json:"puntaje"`
	Position int    `json:"posicion"`
}
