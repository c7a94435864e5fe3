package fiber

// CreateClickRequest represents a click forwarded by the redirect layer
// @Description Click ingestion DTO
type CreateClickRequest struct {
	URLID      string `json:"url_id" example:"3f2a9c1e"`
	Timestamp  int64  `json:"timestamp" example:"1773576000"`
	IP         string `json:"ip" example:"203.0.113.7"`
	VisitorKey string `json:"visitor_key"`
	UserAgent  string `json:"user_agent"`
	Referrer   string `json:"referrer" example:"https://news.ycombinator.com/"`
}

type CreateClickResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BulkCreateClicksRequest struct {
	Clicks []CreateClickRequest `json:"clicks"`
}

type BulkCreateClicksResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_click"`
	Message string `json:"message" example:"Click payload is invalid"`
}
