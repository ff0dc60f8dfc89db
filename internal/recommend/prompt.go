// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package recommend

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/goccy/go-json"

	"github.com/tomtom215/seniorfit/internal/models"
)

// PhysiotherapistRole is the system role for plan generation
const PhysiotherapistRole = "Eres un fisioterapeuta especializado en adultos mayores."

var funcs = template.FuncMap{
	"join": strings.Join,
}

var planTemplate = template.Must(template.New("plan").Funcs(funcs).Parse(
	`Usuario: {{.Name}}, {{.Age}} años, {{.Gender}}
Condiciones: {{join .Conditions ", "}}
Nivel de actividad: {{.ActivityLevel}}

Ejercicios recomendados del corpus: {{.ExercisesJSON}}

Genera un plan de ejercicios personalizado que incluya:
1. Calentamiento (5 minutos)
2. Ejercicios principales (20-30 minutos)
3. Enfriamiento (5 minutos)

Incluye precauciones específicas basadas en las banderas rojas.`))

var dailyTemplate = template.Must(template.New("daily").Funcs(funcs).Parse(
	`Eres **Sofi**, la entrenadora virtual de *Senior Fitness*.
Tu objetivo es motivar, cuidar y acompañar al usuario con empatía.

Datos del usuario:
- Nombre: {{.Name}}
- Edad: {{.Age}} años
- Género: {{.Gender}}
- Nivel físico: {{.Level}}
- Estado de ánimo actual: {{.Mood}}
- Condiciones médicas: {{join .Conditions ", "}}
- Último ejercicio: {{.LastExercise}}

Instrucciones:
1. Usa un tono cálido, natural y cercano. No suenes robótica.
2. Ofrece una recomendación de ejercicio segura y adaptada al nivel y estado de ánimo.
3. Incluye una breve justificación y un consejo de bienestar general.
4. Si el usuario está "cansado", prioriza ejercicios suaves o de respiración.
5. Si está "motivado", sugiere algo un poco más activo (dentro de su nivel).
6. Devuelve el resultado en formato JSON con esta estructura:

{
  "mensaje": "...",
  "ejercicio": {
    "nombre": "...",
    "duracion": "...",
    "tipo": "...",
    "nivel": "...",
    "consejo": "..."
  }
}

Usa máximo 2 emojis.`))

// planData feeds planTemplate
type planData struct {
	Name          string
	Age           int
	Gender        string
	Conditions    []string
	ActivityLevel string
	ExercisesJSON string
}

// dailyProfile is a user profile with the coach defaults applied
type dailyProfile struct {
	Name         string
	Age          int
	Gender       string
	Level        string
	Mood         string
	Conditions   []string
	LastExercise string
}

// Defaults for missing profile fields in the daily coach prompt
const (
	defaultName         = "Usuario"
	defaultAge          = 65
	defaultGender       = "No especificado"
	defaultLevel        = "principiante"
	defaultMood         = "neutral"
	defaultCondition    = "Ninguna"
	defaultLastExercise = "nunca"
)

func newDailyProfile(u *models.User) dailyProfile {
	p := dailyProfile{
		Name:         firstNonEmpty(u.Name, defaultName),
		Age:          u.Age,
		Gender:       firstNonEmpty(u.Gender, defaultGender),
		Level:        firstNonEmpty(u.FitnessLevel, defaultLevel),
		Mood:         firstNonEmpty(u.Mood, defaultMood),
		Conditions:   u.ChronicConditions,
		LastExercise: firstNonEmpty(u.LastExerciseCompleted, defaultLastExercise),
	}
	if p.Age <= 0 {
		p.Age = defaultAge
	}
	if len(p.Conditions) == 0 {
		p.Conditions = []string{defaultCondition}
	}
	return p
}

// buildPlanPrompt renders the plan prompt. Exercises are embedded as JSON
// with non-ASCII text kept as UTF-8.
func buildPlanPrompt(user *models.User, conditions []string, activityLevel string, exercises []models.Exercise) (string, error) {
	var exercisesJSON bytes.Buffer
	enc := json.NewEncoder(&exercisesJSON)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(exercises); err != nil {
		return "", fmt.Errorf("encode exercises: %w", err)
	}

	return render(planTemplate, planData{
		Name:          user.Name,
		Age:           user.Age,
		Gender:        user.Gender,
		Conditions:    conditions,
		ActivityLevel: activityLevel,
		ExercisesJSON: strings.TrimSpace(exercisesJSON.String()),
	})
}

func buildDailyPrompt(p dailyProfile) (string, error) {
	return render(dailyTemplate, p)
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

func firstNonEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
