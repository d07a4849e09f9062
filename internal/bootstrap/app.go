// Package bootstrap assembles the application dependency graph.
package bootstrap

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/config"
	"resume-parser/internal/fields"
	"resume-parser/internal/llm"
	openai "resume-parser/internal/llm/openai"
	"resume-parser/internal/parsing"
	"resume-parser/internal/shared/server"
)

// App holds shared dependencies.
type App struct {
	Config       config.Config
	Router       *gin.Engine
	FieldSource  fields.Source
	ParseService *parsing.Service
	ParseHandler *parsing.Handler
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	var llmClient llm.Client
	if cfg.LLMProvider == "openai" {
		client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.LLMModel)
		if err != nil {
			return nil, err
		}
		llmClient = client
	}

	var fieldSource fields.Source
	if cfg.FieldSchemaURL != "" {
		source, err := fields.NewHTTPSource(cfg.FieldSchemaURL, cfg.FieldSchemaTimeout)
		if err != nil {
			return nil, err
		}
		fieldSource = source
	} else {
		log.Printf("bootstrap: FIELD_SCHEMA_URL empty; parsing without custom fields")
		fieldSource = fields.StaticSource{}
	}

	parseSvc := &parsing.Service{
		LLM:    llmClient,
		Fields: fieldSource,
		Model:  cfg.LLMModel,
	}
	parseHandler := parsing.NewHandler(parseSvc)

	app := &App{
		Config:       cfg,
		FieldSource:  fieldSource,
		ParseService: parseSvc,
		ParseHandler: parseHandler,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:       cfg,
		ParseHandler: parseHandler,
	})
	return app, nil
}
