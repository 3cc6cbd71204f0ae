package handler

import "errors"

const (
	// RootPath is the root path of a route group.
	RootPath = "/"

	// IDPath is the path of a single resource inside a route group.
	IDPath = "/:id"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)

// ErrNilACD is returned by Init if app, cfg or db is nil.
var ErrNilACD = errors.New(ErrNilACDFatalLogMsg)
