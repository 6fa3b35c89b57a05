package models

// FileDescriptor describes a log file uploaded to the backend. FileHash is the sha256 of the raw payload.
// Timestamps are kept as the backend renders them since they usually carry no zone.
type FileDescriptor struct {
	FileHash   string `json:"file_hash"`
	UserID     int64  `json:"user_id"`
	FileName   string `json:"file_name"`
	FileSize   int64  `json:"file_size"`
	UploadedAt string `json:"uploaded_at"`
}

// User is an account registered on the backend.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}
