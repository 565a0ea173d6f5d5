// Package source opens registry tables by location.
//
// A location is either a local file path or an object URL of the form
// s3://bucket/key. Mux dispatches on the scheme and builds the S3 client
// only when an s3:// location is first opened.
package source
