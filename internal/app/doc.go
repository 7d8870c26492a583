// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle that turns puzzle inputs
// or plans into answers, decoupled from any specific entrypoint like a CLI.
package app
