// Package timezones provides deterministic IANA timezone data, search helpers,
// and small net/http handlers that list zones as form options and resolve
// timezone expressions into their canonical form.
//
// The options handler responds to GET and HEAD requests and supports query
// and limit parameters to filter results. The resolve handler accepts any
// expression understood by the timezone package ("local", "UTC", "+05:30",
// "America/New_York") and reports its display name and current offset. The
// backing list is loaded from the embedded file data/iana_timezones.txt and an
// OpenAPI description of the routes is embedded as openapi.yaml.
package timezones
