package prompt_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	providePlanPromptClient,
	utils.NewOpenAITripExtractor,
	services.NewPromptPlanService)

func providePlanPromptClient() utils.PlanPromptClientInterface {
	client, err := utils.NewGeminiPlanClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	return client
}
