package pdf

// FileInfo describes one SDS PDF on disk.
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// Request Types

// ValidateFileRequest asks whether a file is a readable SDS PDF.
type ValidateFileRequest struct {
	Path string `json:"path"`
}

// StatsFileRequest asks for details about a single SDS PDF.
type StatsFileRequest struct {
	Path string `json:"path"`
}

// SearchDirectoryRequest asks for the SDS PDFs under a directory.
type SearchDirectoryRequest struct {
	Directory string `json:"directory"`
	Query     string `json:"query"`
}

// Response Types

// ValidateFileResult reports a validation verdict for one file.
type ValidateFileResult struct {
	Valid   bool   `json:"valid"`
	Path    string `json:"path"`
	Message string `json:"message,omitempty"`
}

// StatsFileResult carries file-level details for one SDS PDF.
type StatsFileResult struct {
	Path         string `json:"path"`
	Size         int64  `json:"size"`
	Pages        int    `json:"pages"`
	CreatedDate  string `json:"created_date,omitempty"`
	ModifiedDate string `json:"modified_date"`
	Title        string `json:"title,omitempty"`
	Author       string `json:"author,omitempty"`
	Subject      string `json:"subject,omitempty"`
	Producer     string `json:"producer,omitempty"`
}

// SearchDirectoryResult lists the SDS PDFs found under a directory.
type SearchDirectoryResult struct {
	Files       []FileInfo `json:"files"`
	TotalCount  int        `json:"total_count"`
	Directory   string     `json:"directory"`
	SearchQuery string     `json:"search_query,omitempty"`
}
