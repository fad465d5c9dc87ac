// Package core defines the identity types and collaborator interfaces shared
// by every topicfilter package.
//
// # Identity Types
//
//   - TopicID: a threaded discussion record, the entity being filtered
//   - CategoryID / TagID / UserID: referenced entities
//   - NotificationLevel: a viewer's per-topic notification setting
//
// # Collaborators
//
// The resolution core never talks to a database directly. Lookups go through
// two narrow store interfaces (CategoryStore, TagStore) and permission checks
// go through the Guardian oracle. Implementations decide how the lookups are
// executed; the core only requires that dependent lookups happen in call
// order (categories before subcategory expansion, tag names before groups).
package core
