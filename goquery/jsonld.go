package goquery

import (
	"encoding/json"
	"strconv"

	"github.com/fwojciec/storegen"
)

// decodeJSONLD parses one JSON-LD script block into a flat list of
// objects, accepting either a single object or an array at the top
// level. Invalid JSON yields nil: structured-data blocks in the wild
// are frequently broken and a bad block must not abort the scan.
func decodeJSONLD(raw string) []map[string]any {
	var single map[string]any
	if err := json.Unmarshal([]byte(raw), &single); err == nil {
		return []map[string]any{single}
	}
	var list []map[string]any
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list
	}
	return nil
}

// asString returns v as a string, or "" when it is missing or another type.
func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asNumber coerces v to a float64, accepting JSON numbers and numeric
// strings. Returns 0 when no number can be read.
func asNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// authorName reads a JSON-LD author field, which is either a plain
// string or an object carrying a name.
func authorName(v any) string {
	if s := asString(v); s != "" {
		return s
	}
	if m, ok := v.(map[string]any); ok {
		return asString(m["name"])
	}
	return ""
}

// imageURLs reads a JSON-LD image field: a string, an array of strings,
// or an array of objects carrying a url.
func imageURLs(v any) []string {
	switch img := v.(type) {
	case string:
		return []string{img}
	case []any:
		var urls []string
		for _, entry := range img {
			if s := asString(entry); s != "" {
				urls = append(urls, s)
			} else if m, ok := entry.(map[string]any); ok {
				if u := asString(m["url"]); u != "" {
					urls = append(urls, u)
				}
			}
		}
		return urls
	case map[string]any:
		if u := asString(img["url"]); u != "" {
			return []string{u}
		}
	}
	return nil
}

// reviewFromJSONLD maps one JSON-LD review object onto a Review. Every
// field access is defensive; only the body text is mandatory and its
// absence is handled by the reducer's length floor.
func reviewFromJSONLD(m map[string]any) *storegen.Review {
	name := authorName(m["author"])
	if name == "" {
		name = storegen.ReviewerCustomer
	}

	text := asString(m["reviewBody"])
	if text == "" {
		text = asString(m["description"])
	}

	rating := asNumber(m["rating"])
	if rr, ok := m["reviewRating"].(map[string]any); ok {
		if v := asNumber(rr["ratingValue"]); v != 0 {
			rating = v
		}
	}

	return &storegen.Review{
		Name:   name,
		Text:   cleanText(text),
		Rating: rating,
		Date:   asString(m["datePublished"]),
		Title:  asString(m["name"]),
	}
}
