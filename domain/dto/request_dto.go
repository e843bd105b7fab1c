package dto

// Res is the generic envelope for error responses.
type Res struct {
	ResponseCode    string `json:"responseCode"`
	ResponseMessage string `json:"responseMessage"`
}

// UploadVideoRequest carries a new upload's metadata.
type UploadVideoRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	VideoURL     string   `json:"videoUrl"`
	Duration     int      `json:"duration"`
	Tags         []string `json:"tags"`
	Category     string   `json:"category" binding:"required"`
}

// AddCommentRequest carries a new top-level comment.
type AddCommentRequest struct {
	VideoID string `json:"videoId" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreatePlaylistRequest carries a new playlist's metadata.
type CreatePlaylistRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
}

// AddToPlaylistRequest adds one video to an existing playlist.
type AddToPlaylistRequest struct {
	VideoID string `json:"videoId" binding:"required"`
}
