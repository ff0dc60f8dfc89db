// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package models

// Exercise is one entry of the built-in exercise corpus: an exercise
// suited to a chronic condition, with its benefits and red flags.
type Exercise struct {
	ID          int    `json:"id"`
	Condition   string `json:"condicion"`
	Name        string `json:"ejercicio"`
	Description string `json:"descripcion"`
	Level       string `json:"nivel"`
	Benefits    string `json:"beneficios"`
	RedFlags    string `json:"banderas_rojas"`
}
