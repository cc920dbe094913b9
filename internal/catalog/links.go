package catalog

import "strings"

// DirectDownloadURL rewrites a shareable Google Drive "view" link into its
// direct-download form. Both the /file/d/<id>/ path form and the id=<id>
// query form are recognized; every other URL passes through unchanged.
func DirectDownloadURL(url string) string {
	if url == "" || !strings.Contains(url, "drive.google.com") {
		return url
	}
	var fileID string
	if _, rest, ok := strings.Cut(url, "/file/d/"); ok {
		fileID, _, _ = strings.Cut(rest, "/")
	} else if _, rest, ok := strings.Cut(url, "id="); ok {
		fileID, _, _ = strings.Cut(rest, "&")
	}
	if fileID == "" {
		return url
	}
	return "https://drive.google.com/uc?export=download&id=" + fileID
}
