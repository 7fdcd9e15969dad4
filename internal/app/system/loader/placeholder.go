package loader

import "net/url"

// Placeholder is the view model of the shared "loading" snippet: a box that
// requests URL once when it enters the page and is replaced by the answer.
type Placeholder struct {
	URL   string
	Items string
}

// NewPlaceholder builds a placeholder for path, carrying the non-empty values
// of q as the query string.
func NewPlaceholder(path string, q url.Values, items string) Placeholder {
	clean := url.Values{}
	for k, vs := range q {
		for _, v := range vs {
			if v != "" {
				clean.Add(k, v)
			}
		}
	}
	if enc := clean.Encode(); enc != "" {
		path += "?" + enc
	}
	return Placeholder{URL: path, Items: items}
}
