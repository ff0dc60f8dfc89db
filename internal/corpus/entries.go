// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package corpus

import "github.com/tomtom215/seniorfit/internal/models"

// defaultEntries is never modified; Default copies it.
var defaultEntries = []models.Exercise{
	{
		ID:          1,
		Condition:   "Hipertensión",
		Name:        "Caminata ligera",
		Description: "Caminar a paso tranquilo durante 20-30 minutos en superficie plana.",
		Level:       "Bajo",
		Benefits:    "Mejora la circulación y ayuda a controlar la presión arterial.",
		RedFlags:    "Evitar subidas muy pronunciadas o caminar bajo altas temperaturas.",
	},
	{
		ID:          2,
		Condition:   "Diabetes tipo 2",
		Name:        "Ejercicios de resistencia con bandas elásticas",
		Description: "Realizar 2-3 series de 10 repeticiones con bandas suaves.",
		Level:       "Moderado",
		Benefits:    "Mejora la sensibilidad a la insulina y mantiene la masa muscular.",
		RedFlags:    "Evitar ejercicios intensos sin control de glicemia.",
	},
	{
		ID:          3,
		Condition:   "Artrosis",
		Name:        "Movilidad articular en silla",
		Description: "Rotación suave de hombros, tobillos y rodillas sentado en una silla.",
		Level:       "Bajo",
		Benefits:    "Reduce la rigidez y mejora la movilidad de las articulaciones.",
		RedFlags:    "Evitar movimientos bruscos o de alto impacto.",
	},
	{
		ID:          4,
		Condition:   "Osteoporosis",
		Name:        "Ejercicios de equilibrio",
		Description: "Caminar en línea recta levantando ligeramente las rodillas.",
		Level:       "Bajo",
		Benefits:    "Reduce el riesgo de caídas y fortalece el equilibrio.",
		RedFlags:    "Evitar ejercicios que impliquen saltos o riesgo de caídas fuertes.",
	},
}
