package model

// NoAdviceText is reported when the model answered with an object lacking advice.
const NoAdviceText = "No advice generated."

type AdviceKind string

const (
	AdviceSuccess            AdviceKind = "success"
	AdviceConfigurationError AdviceKind = "configuration_error"
	AdviceUpstreamError      AdviceKind = "upstream_error"
)

// AdvicePayload is the object the model is instructed to emit.
type AdvicePayload struct {
	Advice      string   `json:"advice"`
	Suggestions []string `json:"suggestions"`
	VideoLink   *string  `json:"video_link"`
	VideoLabel  *string  `json:"video_label"`
}

// AdviceResult is what the advisor produces for every request. Payload is only
// meaningful for AdviceSuccess; Message carries the error text otherwise.
type AdviceResult struct {
	Kind    AdviceKind
	Payload AdvicePayload
	Message string
}

func (r AdviceResult) OK() bool {
	return r.Kind == AdviceSuccess
}

// ToResponse flattens the result onto the HTTP shape.
func (r AdviceResult) ToResponse() AnalyzeResponse {
	if !r.OK() {
		return AnalyzeResponse{
			Response:    r.Message,
			Suggestions: []string{},
			Kind:        r.Kind,
		}
	}

	resp := AnalyzeResponse{
		Response:    r.Payload.Advice,
		Suggestions: r.Payload.Suggestions,
		VideoLink:   r.Payload.VideoLink,
		VideoLabel:  r.Payload.VideoLabel,
		Kind:        r.Kind,
	}
	if resp.Response == "" {
		resp.Response = NoAdviceText
	}
	if resp.Suggestions == nil {
		resp.Suggestions = []string{}
	}
	return resp
}
