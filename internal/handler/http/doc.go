// Package http serves the loopback endpoint the web-vault captcha page
// redirects to once the user has solved a captcha.
//
// The solved token is handed to the auth service, which forwards it to the
// screen waiting for it. Every request gets a trace id and an access log
// entry; the query string is never logged because it carries the token.
package http
