// Package server runs the loopback HTTP listener that receives captcha
// results from the browser.
//
// The listener is a background worker: it is started next to the sign-in
// screen and shut down gracefully when the screen is left.
package server
