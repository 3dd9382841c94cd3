// Package sdg provides a client for the UN SDG Global Database REST API.
//
// The API exposes the Sustainable Development Goals reference hierarchy
// (goals, targets, indicators, series, geographic areas) and the observation
// data recorded against it. This package implements a clean, idiomatic Go
// client for fetching both, shaped as tabular results ready for display and
// export.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the API client with rate limiting, retries, and page aggregation
//   - Config: immutable connection settings (base URL, timeout, retry budget)
//   - Metadata getters: cached lookups over the reference collections
//   - Data queries: filtered observation retrieval via GET and POST
//   - Errors: structured error types for better error handling
//
// # Usage
//
// Create a client and fetch a reference collection:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := sdg.NewClient(sdg.DefaultConfig(), logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	goals, err := client.Goals(ctx, false)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Query observations for an indicator:
//
//	res, err := client.Data(ctx, sdg.DataQuery{
//		IndicatorCode: "1.1.1",
//		GeoAreaCodes:  []string{"840", "826"},
//		TimePeriods:   []int{2020},
//	})
//
// # Features
//
//   - Context-aware API calls
//   - A shared per-client request cooldown (simple rate limiting)
//   - Exponential-backoff retries on transport errors and non-200 statuses
//   - Automatic page aggregation until the result set is exhausted
//   - Metadata caching with explicit force-refresh
//
// # Error Handling
//
// Requests that keep failing after the retry budget is spent surface as a
// *RequestError wrapping the last error observed; non-200 responses inside
// the retry loop are *StatusError values. All error statuses retry alike:
// the client makes no distinction between, say, 429 and 500. A successful
// request returning zero rows is not an error.
//
// One client instance issues strictly sequential requests; the cooldown
// timestamp and the metadata cache are guarded so that sharing a client
// across goroutines is safe, but no requests are ever issued concurrently
// by the client itself.
package sdg
