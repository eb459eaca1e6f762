//go:build wasm

package main

// serve is unreachable in the browser, where app.RunWhenOnBrowser never returns.
func serve() {}
