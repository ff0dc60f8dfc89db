// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

// Package corpus holds the built-in exercise corpus: exercises known to
// suit older adults with a given chronic condition.
//
// A Corpus is immutable after construction and safe for concurrent use.
// Services receive it by injection rather than reading package state.
package corpus

import (
	"strings"

	"github.com/tomtom215/seniorfit/internal/models"
)

// Corpus is an immutable, ordered set of exercise entries.
type Corpus struct {
	entries []models.Exercise
}

// New builds a corpus from entries. The slice is copied.
func New(entries []models.Exercise) *Corpus {
	c := &Corpus{entries: make([]models.Exercise, len(entries))}
	copy(c.entries, entries)
	return c
}

// Default returns the corpus shipped with the service.
func Default() *Corpus {
	return New(defaultEntries)
}

// Len returns the number of entries.
func (c *Corpus) Len() int {
	return len(c.entries)
}

// All returns a copy of every entry in corpus order.
func (c *Corpus) All() []models.Exercise {
	out := make([]models.Exercise, len(c.entries))
	copy(out, c.entries)
	return out
}

// Match returns the entries whose condition equals one of conditions,
// compared case-insensitively. Conditions are processed in request order
// and each contributes every matching entry, so a condition requested twice
// yields its entries twice. The result is never nil.
func (c *Corpus) Match(conditions []string) []models.Exercise {
	matched := make([]models.Exercise, 0, len(conditions))
	for _, condition := range conditions {
		for _, entry := range c.entries {
			if strings.EqualFold(entry.Condition, condition) {
				matched = append(matched, entry)
			}
		}
	}
	return matched
}
