// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

/*
Package supabase implements store.Store on Supabase tables through the
PostgREST API exposed at {SUPABASE_URL}/rest/v1.

Every request carries the project key twice, as the apikey header and as a
bearer token. Filters use PostgREST operators in the query string:

	GET   /rest/v1/users?select=*&email=eq.ana@example.com&limit=1
	POST  /rest/v1/exercise_recommendations          (Prefer: return=minimal)
	POST  /rest/v1/streaks?on_conflict=user_email    (ignore-duplicates)
	PATCH /rest/v1/streaks?user_email=eq.X&current_streak=eq.N

# Atomic streak updates

PostgREST has no row locks, so ModifyStreak is a compare-and-swap loop:

 1. read the row
 2. insert it if absent (a duplicate is ignored and returns no rows), or
    PATCH it filtered on the value that was read
 3. an empty representation means another writer got there first, so the
    row is read again

The loop gives up after maxSwapAttempts and reports ErrContention. Lost
races are counted in seniorfit_streak_conflicts_total.

The client is normally wrapped in store.CircuitBreakerStore.
*/
package supabase
