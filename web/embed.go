// Package web holds the widget's static images and stylesheet.
package web

import "embed"

// FS contains the files served under /web/.
//
//go:embed *.svg *.css
var FS embed.FS
