// Package mapper defines the Mapper contract between a domain record and its
// view record, the generic combinators used to compose mappers, and the
// mappers for every entity of the module.
//
// Mappers are stateless values: they perform no I/O, hold no mutable state
// and may be used from any number of goroutines. For every record d that a
// mapper accepts, ToDomainModel(ToViewModel(d)) equals d field for field.
// The only exceptions are documented on the mapper that introduces them.
package mapper
