// Package editing defines the view models exchanged with the editorial UI.
//
// Field names and nesting (tabs -> properties, each property carrying alias,
// label, value, editor view, validation and configuration) are the contract
// with the front-end editor and are serialised in camelCase.
package editing
