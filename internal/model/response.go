package model

// AnalyzeResponse is the body returned by POST /analyze.
type AnalyzeResponse struct {
	Response    string     `json:"response"`
	Suggestions []string   `json:"suggestions"`
	VideoLink   *string    `json:"video_link"`
	VideoLabel  *string    `json:"video_label"`
	Kind        AdviceKind `json:"kind"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ErrorResponse is used for every non-200 reply.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
