// Package topicdump saves a single V2EX discussion thread to a local file.
// It fetches the topic page, extracts the title, body and replies with
// class-name selectors, and writes the result as plain text or markdown.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, rod/).
package topicdump
