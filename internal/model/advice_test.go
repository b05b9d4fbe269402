package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestAdviceResult_ToResponse(t *testing.T) {
	t.Run("success passes fields through", func(t *testing.T) {
		r := AdviceResult{
			Kind: AdviceSuccess,
			Payload: AdvicePayload{
				Advice:      "Replace the pads.",
				Suggestions: []string{"Show me a DIY Video"},
				VideoLink:   strPtr("https://example.com"),
				VideoLabel:  strPtr("Watch"),
			},
		}
		resp := r.ToResponse()
		assert.Equal(t, "Replace the pads.", resp.Response)
		assert.Equal(t, []string{"Show me a DIY Video"}, resp.Suggestions)
		assert.Equal(t, "https://example.com", *resp.VideoLink)
		assert.Equal(t, "Watch", *resp.VideoLabel)
		assert.Equal(t, AdviceSuccess, resp.Kind)
	})

	t.Run("success with empty object uses defaults", func(t *testing.T) {
		resp := AdviceResult{Kind: AdviceSuccess}.ToResponse()
		assert.Equal(t, NoAdviceText, resp.Response)
		assert.NotNil(t, resp.Suggestions)
		assert.Empty(t, resp.Suggestions)
		assert.Nil(t, resp.VideoLink)
	})

	t.Run("errors map message onto response", func(t *testing.T) {
		for _, kind := range []AdviceKind{AdviceConfigurationError, AdviceUpstreamError} {
			resp := AdviceResult{Kind: kind, Message: "Error: boom"}.ToResponse()
			assert.Equal(t, "Error: boom", resp.Response)
			assert.Equal(t, []string{}, resp.Suggestions)
			assert.Nil(t, resp.VideoLink)
			assert.Nil(t, resp.VideoLabel)
			assert.Equal(t, kind, resp.Kind)
		}
	})
}

func TestAnalyzeResponse_NullVideoFields(t *testing.T) {
	body, err := json.Marshal(AdviceResult{Kind: AdviceSuccess, Payload: AdvicePayload{Advice: "ok"}}.ToResponse())
	require.NoError(t, err)
	assert.JSONEq(t, `{"response":"ok","suggestions":[],"video_link":null,"video_label":null,"kind":"success"}`, string(body))
}

func TestAnalyzeRequest_VehicleContext(t *testing.T) {
	var req AnalyzeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"query":"Engine rattles","make":"Toyota","model":"Corolla","year":2018,"mileage":45000}`), &req))

	assert.Equal(t, "Vehicle: 2018 Toyota Corolla with 45000 miles.", req.VehicleContext())
	assert.Equal(t, "Engine rattles", req.QueryText())
	assert.Empty(t, req.History)
}
