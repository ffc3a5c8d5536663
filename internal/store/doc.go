// Package store defines the persistence contract between the engines and
// the durable local key-value store. State lives in named slots, each
// holding one JSON document; the adapter is failure-tolerant and never
// surfaces storage faults to its callers.
package store
