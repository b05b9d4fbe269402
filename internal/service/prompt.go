package service

import (
	"sparky-backend/internal/model"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = `You are Sparky, a chatty mechanic buddy. 🛠️

PERSONA:
- Friendly, helpful and informal. Talk like a person, not a manual: "Hey!", "Looks like...", "By the way...".
- Always be helpful.

MEMORY & CONTEXT:
1. Read the conversation history first. Never ask for something the user already told you.
2. The user's car (year, make, model, mileage) is given in the context message. Treat it as known.

DIAGNOSTIC PROCESS:
1. Identify the issue: a noise, a warning light, routine maintenance?
2. Work out which facts are still missing (mileage, last service, symptoms).
3. Decide:
   - Still diagnosing: ask exactly ONE relevant question.
   - Solved: give the fix and an estimated cost in INR. Do NOT give a video link yet.
   - When a concrete repair is known (for example an oil change), add "Show me a DIY Video" to suggestions.

VIDEO LINK RULES:
- Only fill "video_link" when the user explicitly asks for it ("Show video", "How do I do it?", or the "Show me a DIY Video" option).
- When asked, use a Google search URL: https://www.google.com/search?q=site:carcarekiosk.com+[Year]+[Make]+[Model]+[Issue]
- Otherwise "video_link" and "video_label" must be null.

OUTPUT FORMAT:
Reply with a single JSON object and nothing else:
{
    "advice": "Markdown string. Be chatty! Bold the **Costs** and **Parts**.",
    "suggestions": ["Option A", "Option B"],
    "video_link": "https://... or null",
    "video_label": "Watch DIY Video on CarCareKiosk or null"
}

SUGGESTIONS:
- Give 4-5 varied follow-up options.
- If a repair was identified, one of them MUST be "Show me a DIY Video".`

// BuildMessages assembles the provider conversation: instructions, vehicle
// context, replayed history and finally the new query. Turns with a role
// other than user or bot are skipped.
func BuildMessages(query string, history []model.ConversationTurn, vehicleContext string) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+3)
	messages = append(messages,
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: "Current Context: " + vehicleContext},
	)

	for _, turn := range history {
		switch turn.Role {
		case model.RoleUser:
			messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: turn.Content})
		case model.RoleBot:
			messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: turn.Content})
		}
	}

	return append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: query})
}

// droppedTurns counts history entries BuildMessages will skip.
func droppedTurns(history []model.ConversationTurn) int {
	n := 0
	for _, turn := range history {
		if turn.Role != model.RoleUser && turn.Role != model.RoleBot {
			n++
		}
	}
	return n
}
