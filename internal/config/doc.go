// Package config reads optional settings from a file named on the command
// line with --config. Environment variables are not consulted.
package config
