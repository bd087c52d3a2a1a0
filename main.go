package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/strathwell/planner-engine/internal/core"
	"github.com/strathwell/planner-engine/internal/planner"
	"github.com/strathwell/planner-engine/internal/planner/catalog"
	"github.com/strathwell/planner-engine/internal/planner/graph"
	"github.com/strathwell/planner-engine/internal/planner/model"
	"github.com/strathwell/planner-engine/internal/planner/repo"
	logx "github.com/strathwell/planner-engine/pkg/logger"
	pkgredis "github.com/strathwell/planner-engine/pkg/redis"
)

// AppConfig defines all configurable parameters for the planner example,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	// Infrastructure
	Redis pkgredis.Config

	// LLM provider
	APIKey  string `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Planner configs
	Intent       model.IntentModelConfig
	Suggestion   model.SuggestionModelConfig
	Prompt       model.SuggestionPromptConfig
	Conversation model.ConversationConfig
	Planner      model.PlannerConfig
}

func main() {
	fmt.Println("Testing Planner Graph...")
	ctx := context.Background()
	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(os.Getenv("APP_ENV"))})

	// Load structured config from env
	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	rdb, err := envCfg.Redis.New()
	if err != nil {
		log.Fatalf("Failed to initialise Redis client: %v", err)
	}
	defer rdb.Close()

	fmt.Println("Connected to Redis successfully")

	// ====================================================
	// Build graph config entirely from env
	ttl, err := time.ParseDuration(envCfg.Conversation.TTL)
	if err != nil {
		log.Fatalf("Invalid CONVERSATION_TTL '%s': %v", envCfg.Conversation.TTL, err)
	}

	catalogRepo := repo.NewRedisCatalogRepository(rdb)
	if err := catalogRepo.Seed(ctx); err != nil {
		log.Fatalf("Failed to seed demo catalog: %v", err)
	}

	cfg := graph.Config{
		APIKey:           envCfg.APIKey,
		BaseURL:          envCfg.BaseURL,
		IntentModel:      envCfg.Intent,
		SuggestionModel:  envCfg.Suggestion,
		Prompt:           envCfg.Prompt,
		Conversation:     envCfg.Conversation,
		Planner:          envCfg.Planner,
		ConversationRepo: repo.NewRedisConversationRepository(rdb, ttl),
		CatalogRepo:      catalogRepo,
		PlanRepo:         repo.NewRedisPlanRepository(rdb, ttl),
	}

	runner, err := graph.BuildPlannerGraph(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to build graph: %v", err)
	}

	testQueries := []struct {
		description string
		query       string
	}{
		{
			description: "Full venue search with guest count and budget",
			query:       "I'm planning a wedding in Cambridge for 120 guests, budget: $30k",
		},
		{
			description: "Vendor-only request with an existing venue",
			query:       "We already booked a hall, now we need catering and a makeup artist",
		},
		{
			description: "Vague request that should trigger a clarify question",
			query:       "Help me plan something special",
		},
	}

	conversationID := "demo-conversation-1001"

	for i, test := range testQueries {
		fmt.Printf("\n🚀 Test %d: %s\n", i+1, test.description)
		fmt.Printf("Query: \"%s\"\n", test.query)
		fmt.Println("Processing...")

		result, err := runner.Invoke(ctx, model.PlanRequest{
			ConversationID: conversationID,
			Query:          test.query,
		})
		if err != nil {
			log.Fatalf("Failed to invoke graph for test %d: %v", i+1, err)
		}

		fmt.Printf("✅ Response %d: %s\n", i+1, result.Message)
		if result.Plan != nil {
			fmt.Printf("   venues=%d vendors=%d budget_total=$%.2f\n",
				len(result.Plan.Venues), len(result.Plan.Vendors), result.Plan.Budget.Total)
		}
		if result.Clarification {
			fmt.Println("   (follow-up question, no plan yet)")
		}
		fmt.Println("─────────────────────────────────────────────────")

		// add slight delay between tests for readability
		time.Sleep(500 * time.Millisecond)
	}

	// Related-items panel, same ranking the frontend uses
	eng := planner.NewEngine(envCfg.Planner)
	related := eng.RelatedTemplates("wedding planning ideas", catalog.DemoTemplates)
	fmt.Println("\nRelated planning templates:")
	for _, item := range related {
		fmt.Printf("  - %s\n", item.Title)
	}

	fmt.Println("🎉 All planner tests completed successfully!")
}
