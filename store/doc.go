// Package store persists transducer records in BadgerDB.
//
// Records are stored under "rec/" followed by a zero-padded decimal id, so
// key order is id order. Values use the record text form. Append assigns
// ids 1, 2, 3, … continuing after the highest id present when the store was
// opened.
//
// A Store is safe for concurrent use.
package store
