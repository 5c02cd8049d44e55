package request

// ArrivalPhotoRequest is the provider's on-site evidence upload.
type ArrivalPhotoRequest struct {
	PhotoRef string `json:"photo_ref" binding:"required"`
}
