// Package bundle publishes the build artifacts to object storage.
//
// The Android flat file, the iOS SQLite database, and the processed image
// folder are uploaded to a bucket as one bundle. Publishing is optional and
// runs as its own command after a successful build.
package bundle
