// Package provider holds result types shared between external-source adapters
// and the services that consume them.
package provider

import "time"

// ArticleResult is the readable content extracted from a web page.
type ArticleResult struct {
	Title    string
	Byline   string
	SiteName string
	Text     string
	URL      string
}

// StoredObject describes an object held in object storage.
type StoredObject struct {
	Key          string
	Size         int64
	LastModified time.Time
}
