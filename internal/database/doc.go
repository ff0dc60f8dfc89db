// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

/*
Package database implements store.Store on an embedded DuckDB file.

It is selected with STORE_BACKEND=duckdb and suits single-instance
deployments that do not want a hosted database.

# Schema

	users                     read-only to the API, filled by SeedUsers
	exercise_recommendations  append-only plan log
	streaks                   one row per email

List columns (chronic conditions, recommendation conditions) are stored as
JSON text so the schema does not depend on DuckDB list binding.

# Concurrency

DuckDB uses optimistic concurrency control: two transactions updating the
same row conflict instead of blocking. ModifyStreak therefore serializes
writers with a mutex and runs the read and the upsert in one transaction,
which makes the streak update atomic for this process.

# Usage

	db, err := database.New(&cfg.Database.DuckDB)
	if err != nil {
	    return err
	}
	defer db.Close()
*/
package database
