// Package main provides the entry point of showcase, a single binary serving three
// small REST backends: a blog, a portfolio with a token protected admin area and a
// to-do list. Each backend runs on the Fiber framework and keeps its data in
// PostgreSQL, MySQL or SQLite through gorm.
package main
