// Package app is the composition root for Nexus.
//
// # Startup
//
//  1. config.Load reads $XDG_CONFIG_HOME/nexus/config.toml (or -config)
//  2. newLogger opens the log file when -debug is set
//  3. prefs.Load picks the saved theme
//  4. state.NewStore is seeded with the sample files and connections
//  5. the mock uploader and connector share one IDSequence whose floor is
//     the largest seeded file ID
//  6. ui.Run blocks until the user quits or the context is cancelled
//
// # Error Handling
//
// Only configuration and log-file failures are fatal. Upload and connection
// failures surface inside the UI status bar and the process keeps running.
package app
