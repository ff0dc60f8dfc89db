// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

/*
Package services adapts application components to suture.Service.

HTTPServerService runs *http.Server.ListenAndServe in a goroutine and calls
Shutdown with a fresh timeout context once the supervisor cancels it.

StoreMaintenanceService calls Maintain on an embedded store every interval:
a DuckDB CHECKPOINT or a Badger value log GC. Each run is bounded to half
the interval and recorded in store_query_duration_seconds with
operation="maintain". Failures are logged and do not stop the service.

Both services return ctx.Err() on cancellation.
*/
package services
