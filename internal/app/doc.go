// Package app contains the core application logic. It defines the resolved
// Configuration, the run's logger and the App that hands the configuration to
// the calendar printer, decoupled from how the values were collected.
package app
