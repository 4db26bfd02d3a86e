package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"seogen-go/pkg/catalog"
	"seogen-go/pkg/deploy"
	"seogen-go/pkg/generator"
	"seogen-go/pkg/llm"
	"seogen-go/pkg/logger"
	"seogen-go/pkg/storage"
)

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns environment variable as int or default
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvBoolOrDefault returns environment variable as bool or default
func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func main() {
	// Global panic recovery to prevent application crash
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("CRITICAL ERROR: Application panic recovered: %v\n", r)
			os.Exit(1)
		}
	}()

	defaultBusinessID := getEnvOrDefault("BUSINESS_ID", "")
	defaultBusinessName := getEnvOrDefault("BUSINESS_NAME", "")
	defaultPhone := getEnvOrDefault("BUSINESS_PHONE", "")
	defaultServices := getEnvOrDefault("SERVICE_IDS", "")
	defaultAreas := getEnvOrDefault("SERVICE_AREAS", "")
	defaultBatchSize := getEnvIntOrDefault("BATCH_SIZE", generator.DefaultBatchSize)
	defaultLLMURL := getEnvOrDefault("LLM_API_URL", "")
	defaultLLMKey := getEnvOrDefault("LLM_API_KEY", "")
	defaultLLMModel := getEnvOrDefault("LLM_MODEL", "")
	defaultDeployURL := getEnvOrDefault("DEPLOY_URL", "")
	defaultDeployKey := getEnvOrDefault("DEPLOY_API_KEY", "")
	defaultDataDir := getEnvOrDefault("DATA_DIR", "")
	defaultEncryptionKey := getEnvOrDefault("ENCRYPTION_KEY", "")
	defaultDebug := getEnvBoolOrDefault("DEBUG", false)

	var (
		businessID    = flag.String("business-id", defaultBusinessID, "Business id to generate for (env: BUSINESS_ID)")
		businessName  = flag.String("business-name", defaultBusinessName, "Business display name (env: BUSINESS_NAME)")
		businessPhone = flag.String("business-phone", defaultPhone, "Business phone number (env: BUSINESS_PHONE)")
		serviceIDs    = flag.String("services", defaultServices, "Comma-separated service ids, empty for default catalog (env: SERVICE_IDS)")
		serviceAreas  = flag.String("service-areas", defaultAreas, "Comma-separated service area cities, empty for defaults (env: SERVICE_AREAS)")
		batchSize     = flag.Int("batch-size", defaultBatchSize, "Jobs per generation batch (env: BATCH_SIZE)")
		llmURL        = flag.String("llm-url", defaultLLMURL, "Completion API base URL, empty disables enhancement (env: LLM_API_URL)")
		llmKey        = flag.String("llm-key", defaultLLMKey, "Completion API key (env: LLM_API_KEY)")
		llmModel      = flag.String("llm-model", defaultLLMModel, "Completion model name (env: LLM_MODEL)")
		deployURL     = flag.String("deploy-url", defaultDeployURL, "Deployment backend URL, empty skips publishing (env: DEPLOY_URL)")
		deployKey     = flag.String("deploy-key", defaultDeployKey, "Deployment backend API key (env: DEPLOY_API_KEY)")
		dataDir       = flag.String("data-dir", defaultDataDir, "Data directory for encrypted result storage, empty uses memory (env: DATA_DIR)")
		encryptionKey = flag.String("encryption-key", defaultEncryptionKey, "Encryption key for result storage (env: ENCRYPTION_KEY)")
		debug         = flag.Bool("debug", defaultDebug, "Enable debug logging (env: DEBUG)")
		help          = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	if *help {
		printUsage()
		return
	}

	if *businessID == "" {
		fmt.Println("ERROR: Business id is required.")
		fmt.Println("Use -business-id flag or BUSINESS_ID environment variable.")
		fmt.Println("")
		printUsage()
		os.Exit(1)
	}

	if *dataDir != "" && *encryptionKey == "" {
		fmt.Println("ERROR: Encryption key is required when using file storage.")
		fmt.Println("Use -encryption-key flag or ENCRYPTION_KEY environment variable.")
		os.Exit(1)
	}

	if *debug {
		logger.SetLogger(logger.New(logger.Config{Level: "debug", Format: "console", Output: "stdout"}))
	}
	log := logger.Component("main")

	log.WithFields(map[string]interface{}{
		"business_id":  *businessID,
		"batch_size":   *batchSize,
		"llm_enabled":  *llmURL != "",
		"deploy_set":   *deployURL != "",
		"file_storage": *dataDir != "",
	}).Info("Starting SEO site generation run")

	store, err := buildStore(*dataDir, *encryptionKey)
	if err != nil {
		log.WithError(err).Fatal("Failed to create storage")
	}

	ctx := context.Background()

	// Seed the business record described by flags so the loader can
	// resolve it; a record already in file storage is left intact.
	if err := seedBusiness(ctx, store, *businessID, *businessName, *businessPhone); err != nil {
		log.WithError(err).Fatal("Failed to seed business record")
	}

	builder := generator.NewSiteGeneratorBuilder().
		WithBusinessID(*businessID).
		WithServiceIDs(splitCSV(*serviceIDs)).
		WithServiceAreas(splitCSV(*serviceAreas)).
		WithStore(store).
		WithBatchSize(*batchSize)

	if *llmURL != "" {
		client, err := llm.NewHTTPCompletionClient(llm.ClientConfig{
			BaseURL: *llmURL,
			APIKey:  *llmKey,
			Model:   *llmModel,
		})
		if err != nil {
			log.WithError(err).Fatal("Failed to create completion client")
		}
		builder = builder.WithCompletionClient(client)
	}

	if *deployURL != "" {
		client, err := deploy.NewClient(deploy.Config{
			BaseURL:    *deployURL,
			APIKey:     *deployKey,
			EnableGzip: true,
		})
		if err != nil {
			log.WithError(err).Fatal("Failed to create deploy client")
		}
		builder = builder.WithDeployClient(client)
	}

	siteGen, err := builder.Build()
	if err != nil {
		log.WithError(err).Fatal("Failed to build site generator")
	}

	start := time.Now()
	result, err := siteGen.GenerateFullSite(ctx)
	if err != nil {
		log.WithError(err).Fatal("Generation run failed")
	}

	summary, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(summary))

	snapshot := siteGen.Metrics().Snapshot()
	log.WithFields(map[string]interface{}{
		"deployment_id":  result.DeploymentID,
		"total_pages":    result.TotalPages,
		"fallback_pages": snapshot.FallbackPages,
		"avg_page_ms":    snapshot.AvgDurationMS,
		"elapsed":        time.Since(start).Round(time.Millisecond).String(),
	}).Info("Generation run finished")
}

func buildStore(dataDir, encryptionKey string) (*storage.SiteStore, error) {
	if dataDir == "" {
		return storage.NewSiteStore(storage.NewMemoryStorage()), nil
	}
	backend, err := storage.NewEncryptedFileStorage(storage.StorageConfig{
		DataDir:     dataDir,
		EncryptData: true,
	}, encryptionKey)
	if err != nil {
		return nil, err
	}
	return storage.NewSiteStore(backend), nil
}

func seedBusiness(ctx context.Context, store *storage.SiteStore, id, name, phone string) error {
	if _, err := store.BusinessByID(ctx, id); err == nil {
		return nil
	}
	return store.SaveBusiness(ctx, &catalog.BusinessProfile{
		ID:                 id,
		Name:               name,
		Phone:              phone,
		YearsInBusiness:    10,
		EmergencyAvailable: true,
	})
}

func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func printUsage() {
	fmt.Println("seogen - batch SEO website generator for home-services businesses")
	fmt.Println("")
	fmt.Println("Usage:")
	fmt.Println("  seogen -business-id <id> [options]")
	fmt.Println("")
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println("")
	fmt.Println("Examples:")
	fmt.Println("  seogen -business-id biz-123 -business-name \"Austin Comfort Air\" -business-phone \"(512) 555-0100\"")
	fmt.Println("  seogen -business-id biz-123 -services ac-repair,drain-cleaning -service-areas \"Austin,Round Rock\"")
	fmt.Println("  BUSINESS_ID=biz-123 LLM_API_URL=https://api.openai.com seogen")
}
