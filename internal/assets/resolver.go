// Package assets maps logical image references onto deployable URLs.
package assets

import "strings"

// Resolve prefixes an image reference with the deployment base path. Refs
// are stored without the base path so the same catalog works under any
// mount point (local run vs. hosted gallery).
func Resolve(imageRef, basePath string) string {
	if !strings.HasPrefix(imageRef, "/") {
		imageRef = "/" + imageRef
	}
	return strings.TrimSuffix(basePath, "/") + imageRef
}
