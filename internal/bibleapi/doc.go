// Package bibleapi is the HTTP client for the remote Bible API.
//
// One GET endpoint exists per lookup kind under a common /api/v1 prefix:
//
//	GET /api/v1/verse   ?book=&reference=
//	GET /api/v1/chapter ?book=&chapter=
//	GET /api/v1/range   ?book=&starting_verse=&ending_verse=
//	GET /api/v1/search  ?book=&search_term=
//
// Every response is JSON. 2xx carries the kind's payload field (verse,
// verses or results); anything else should carry an error field.
//
// Query values are percent-encoded. Each request gets an X-Request-ID so a
// lookup can be matched with server logs. Lookups accept a context for
// cancellation and deadlines and are never retried: a failure is terminal
// and the caller decides whether to resubmit.
package bibleapi
