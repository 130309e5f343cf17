package AIService

import (
	"sort"
	"strings"

	"github.com/okanay/backend-chat-api/types"
)

const DefaultModelID = "lamini-t5"

// AvailableModels is the selectable model table. Keys are the public model
// ids accepted by the chat endpoint.
var AvailableModels = map[string]types.ModelConfig{
	"lamini-t5": {
		ID:   "lamini-t5",
		Path: "MBZUAI/LaMini-Flan-T5-248M",
		Params: types.GenerationParams{
			MaxLength:   100,
			Temperature: 0.7,
			TopP:        0.9,
			DoSample:    true,
		},
	},
	"deepseek": {
		ID:   "deepseek",
		Path: "deepseek-ai/deepseek-coder-1.3b-instruct",
		Params: types.GenerationParams{
			MaxLength:   100,
			Temperature: 0.7,
			TopP:        0.9,
			DoSample:    true,
		},
	},
	"blenderbot-400M": {
		ID:   "blenderbot-400M",
		Path: "facebook/blenderbot-400M-distill",
		Params: types.GenerationParams{
			MaxLength:   100,
			Temperature: 0.7,
			TopP:        0.9,
			DoSample:    true,
		},
	},
}

func ModelIDs() []string {
	ids := make([]string, 0, len(AvailableModels))
	for id := range AvailableModels {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func ModelIDList() string {
	return strings.Join(ModelIDs(), ", ")
}

// Conversation role markers used when a prompt carries history. Arabic
// conversations get Arabic markers so the model stays in language.
func rolePrefixes(language types.Language) (userPrefix, botPrefix string) {
	if language == types.LanguageArabic {
		return "المستخدم", "الروبوت"
	}
	return "User", "Bot"
}
