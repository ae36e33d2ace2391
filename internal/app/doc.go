// Package app contains the core application logic of the modforge CLI.
// It defines the App struct, its configuration, and the generation
// lifecycle (load pack, open registries, gather data), decoupled from
// any specific entrypoint.
package app
