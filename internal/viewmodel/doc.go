// Package viewmodel holds the presentation-shaped records produced by the
// mappers: camelCase names, parsed timestamps, display-formatted prices and
// renamed enumerated tags. Presentation code reads these and never the
// records in package domain.
package viewmodel
