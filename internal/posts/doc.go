// Package posts names and writes generated post files.
//
// A post for an issue is written to
//
//	<dir>/<first 10 chars of updated_at>-<title>.md
//
// e.g. _posts/2021-05-03-Fixed a bug.md. The title is used as-is: a title
// containing a path separator lands in a subdirectory or fails to write.
// Two issues with the same date and title write the same file; the later
// one wins.
package posts
