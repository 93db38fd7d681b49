// Package youtube extracts video identifiers from the URL forms YouTube
// hands out and derives thumbnail URLs from them.
package youtube

import "regexp"

// videoIDPattern matches the id segment of youtu.be/, /v/, /u/<digit>/,
// /embed/ and watch?v= style URLs.
var videoIDPattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

const videoIDLength = 11

// ExtractVideoID returns the 11-character video id embedded in url.
// A false second return means the URL does not carry a usable id; that is
// a normal outcome for non-YouTube or malformed input, not an error.
func ExtractVideoID(url string) (string, bool) {
	match := videoIDPattern.FindStringSubmatch(url)
	if match == nil || len(match[2]) != videoIDLength {
		return "", false
	}
	return match[2], true
}

// ThumbnailURL returns the maxres thumbnail URL for a video URL, or ""
// when no video id can be extracted. The maxres variant does not exist for
// every video, so callers must tolerate the image itself failing to load.
func ThumbnailURL(url string) string {
	id, ok := ExtractVideoID(url)
	if !ok {
		return ""
	}
	return "https://img.youtube.com/vi/" + id + "/maxresdefault.jpg"
}
