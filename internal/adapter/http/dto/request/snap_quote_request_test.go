package request

import "testing"

func TestSnapQuoteRequest_ResolveImageRefs(t *testing.T) {
	r := SnapQuoteRequest{
		ImageRefs:   []string{" https://cdn.example/a.jpg ", "", "  "},
		ImageBase64: "abc123",
	}
	refs := r.ResolveImageRefs()
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %v", refs)
	}
	if refs[0] != "https://cdn.example/a.jpg" {
		t.Fatalf("expected trimmed ref, got %q", refs[0])
	}
	if refs[1] != "data:image/jpeg;base64,abc123" {
		t.Fatalf("expected data uri wrap, got %q", refs[1])
	}
}

func TestSnapQuoteRequest_ResolveImageRefs_DataURIPassedThrough(t *testing.T) {
	r := SnapQuoteRequest{ImageBase64: "data:image/png;base64,xyz"}
	refs := r.ResolveImageRefs()
	if len(refs) != 1 || refs[0] != "data:image/png;base64,xyz" {
		t.Fatalf("unexpected refs: %v", refs)
	}
}

func TestSnapQuoteRequest_ResolveImageRefs_Empty(t *testing.T) {
	refs := SnapQuoteRequest{}.ResolveImageRefs()
	if len(refs) != 0 {
		t.Fatalf("expected no refs, got %v", refs)
	}
}
