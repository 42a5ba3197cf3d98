// Package signbank implements the newer of the two content sources: the
// Signbank CSV-export web application.
//
// # Session Handling
//
// Exports are only available to authenticated users. The client loads the
// Django login form to obtain a CSRF cookie, posts the configured
// credentials, and reuses the session cookies for the export requests.
//
// # Record Parsing
//
// Both exports are header-named CSV with no guaranteed column order. Parsing
// maps rows onto explicit typed records (dictionary.WordInput and
// dictionary.AssetInput) and fails fast when a required column is absent.
package signbank
