// Package category maps the free-form category strings stored on
// allocations, expenses and bookings to canonical keys, display labels
// and colors.
//
// Categories were historically entered by hand, so the same category
// exists in the database in multiple spellings ("Photo & Video",
// "photo_video", "photo&video"). All matching is done on the canonical
// key returned by Normalize.
package category

import (
	"hash/fnv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Other is the fallback key for rows without a usable category.
const Other = "other"

// labels contains the curated display labels for the predefined keys.
var labels = map[string]string{
	"venue":       "Venue",
	"photo_video": "Photo & Video",
	"music_dj":    "Music/DJ",
	"sweets":      "Sweets",
	"decorations": "Decorations",
	"invitations": "Invitations",
	"catering":    "Catering",
	"attire":      "Attire",
	Other:         "Other",
}

// aliases collapses spellings that survive the generic rules but mean
// the same thing as a predefined key.
var aliases = map[string]string{
	"photo_and_video": "photo_video",
	"photos_videos":   "photo_video",
	"music_and_dj":    "music_dj",
	"dj":              "music_dj",
}

// Normalize returns the canonical key for a raw category string.
//
// It is total over its input domain: any string, including the empty
// one, maps to a key, and keys map to themselves.
func Normalize(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return Other
	}

	// Whitespace runs and the two separators people actually type
	// all become underscores
	key = strings.Join(strings.Fields(key), "_")
	key = strings.ReplaceAll(key, "&", "_")
	key = strings.ReplaceAll(key, "/", "_")

	// Collapse underscore runs left behind by "photo_&_video" and friends
	for strings.Contains(key, "__") {
		key = strings.ReplaceAll(key, "__", "_")
	}
	key = strings.Trim(key, "_")

	if key == "" {
		return Other
	}

	if canonical, ok := aliases[key]; ok {
		return canonical
	}

	return key
}

// DisplayLabel returns the human readable label for a canonical key.
//
// Keys without a curated label are treated as snake_case and rendered
// as space separated title-cased words.
func DisplayLabel(key string) string {
	if label, ok := labels[key]; ok {
		return label
	}

	caser := cases.Title(language.English)

	words := strings.Split(key, "_")
	for i, word := range words {
		words[i] = caser.String(word)
	}

	return strings.Join(words, " ")
}

// colors contains the curated colors for the predefined keys.
var colors = map[string]string{
	"venue":       "#6C5CE7",
	"photo_video": "#74B9FF",
	"music_dj":    "#A29BFE",
	"sweets":      "#FD79A8",
	"decorations": "#55EFC4",
	"invitations": "#FFEAA7",
	"catering":    "#FAB1A0",
	"attire":      "#81ECEC",
	Other:         "#DFE6E9",
}

// palette is used for custom keys. The pick is stable per key so that a
// custom category keeps its color across reloads.
var palette = []string{
	"#00B894",
	"#00CEC9",
	"#0984E3",
	"#E17055",
	"#FDCB6E",
	"#E84393",
}

// Color returns the color for a canonical key.
func Color(key string) string {
	if color, ok := colors[key]; ok {
		return color
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(key))

	return palette[h.Sum32()%uint32(len(palette))]
}
