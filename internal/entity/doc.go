// Package entity holds the persistence-model entities consumed by the mapping
// layer: documents, media and members, their typed properties, content types
// and their composition graph, data types, users, relations, macros and
// dictionary items.
//
// Entities are loaded by the persistence services and are read-only inputs to
// the mapping layer. The only mutating helpers here are the ones the save
// direction needs (setting culture names, property values, compositions).
package entity
