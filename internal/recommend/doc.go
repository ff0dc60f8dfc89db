// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

/*
Package recommend produces exercise recommendations for older adults.

Two flows share one Service:

Recommend builds a personalized plan. It loads the user, filters the exercise
corpus by the requested chronic conditions, asks the language model for a
warm-up / main / cool-down plan written as a physiotherapist, stores the plan
and returns it with the matched corpus entries.

Daily asks the virtual coach "Sofi" for one short exercise suggestion shaped
as JSON. The model output is cleaned (code fences and surrounding prose are
stripped) and parsed; when the model fails or answers with something that is
not the expected JSON, a fixed gentle stretching suggestion is returned
instead and the response is marked source=fallback. A fallback is still a
successful answer (HTTP 200), so clients branch on source rather than on
status. Daily only fails on bad input, an unknown user, a store failure
or a canceled request.

Errors follow the API taxonomy in internal/models: a missing user is
models.ErrUserNotFound, store and model failures are *models.UpstreamError,
bad input is *models.ValidationError.
*/
package recommend
