// Package config assembles the client configuration.
//
// Values come in layers merged in order, a later layer overriding the
// non-zero fields of an earlier one: environment variables, command-line
// flags, then the JSON file named by either of them (-c, -config, CONFIG).
// [GetClientConfig] maps the merged result onto [ClientConfig], fills the
// address defaults and validates it.
package config
