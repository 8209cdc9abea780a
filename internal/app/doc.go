// Package app contains the core application logic. It defines the main
// App struct, its configuration, and the resolution run lifecycle
// (ingest, resolve, export, summarize), decoupled from the CLI
// entrypoint.
package app
