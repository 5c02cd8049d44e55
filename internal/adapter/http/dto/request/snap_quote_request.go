package request

import "strings"

// SnapQuoteRequest is the photo submission payload. Clients either send
// pre-uploaded image references or a single inline base64 image; both may be
// combined.
type SnapQuoteRequest struct {
	ImageRefs   []string `json:"image_refs"`
	ImageBase64 string   `json:"image_base64"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
}

// ResolveImageRefs merges the reference list with the inline image. Bare
// base64 payloads get wrapped as a data URI so the vision client can pass
// them straight through.
func (r SnapQuoteRequest) ResolveImageRefs() []string {
	refs := make([]string, 0, len(r.ImageRefs)+1)
	for _, ref := range r.ImageRefs {
		if v := strings.TrimSpace(ref); v != "" {
			refs = append(refs, v)
		}
	}
	if v := strings.TrimSpace(r.ImageBase64); v != "" {
		if !strings.HasPrefix(v, "data:") {
			v = "data:image/jpeg;base64," + v
		}
		refs = append(refs, v)
	}
	return refs
}
