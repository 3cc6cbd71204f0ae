// Package patch builds and executes partial UPDATE statements.
//
// A Table describes the updatable columns of one resource as Rules. A Builder
// stages the fields a client actually sent, normalizes and validates them against
// the rules and renders a single UPDATE with placeholders only. Table and column
// names are passed as clause.Table and clause.Column values so the dialect quotes
// them. Values are always bound parameters.
package patch
