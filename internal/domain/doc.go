// Package domain contains the domain records of the dvmm module.
//
// Domain records mirror an external API contract: field names, casing and
// nesting follow the API response, dates stay ISO-8601 strings and enumerated
// values stay raw tags. They carry no presentation logic; mappers in package
// mapper turn them into view records and back.
//
// The package also holds the cross-cutting error model (OpError, ErrorKind)
// and the small value types the use cases exchange.
package domain
