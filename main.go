// Command nano-banana-script drives the Gemini image API through an
// interactive batch session: one master image per prompt file, then pose
// variants conditioned on that master, saved under per-run output folders.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Bizzaro10/nano-banana-script/console"
	"github.com/Bizzaro10/nano-banana-script/core"
	"github.com/Bizzaro10/nano-banana-script/core/validation"
	"github.com/Bizzaro10/nano-banana-script/driver"
	"github.com/Bizzaro10/nano-banana-script/geminiapi"
	"github.com/Bizzaro10/nano-banana-script/logging"
	"github.com/Bizzaro10/nano-banana-script/poses"
	"github.com/Bizzaro10/nano-banana-script/prompts"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env if present; a missing file is fine when the environment is
	// already configured.
	if err := godotenv.Load(); err != nil {
		// fmt here since the logger isn't initialized yet
		fmt.Printf("Note: no .env file loaded: %v\n", err)
	}

	devMode := core.ParseBoolEnv("DEV_MODE", false)

	logger := logging.NewLogger(devMode, core.GetEnvOrDefault("LOG_FILE", "photoset.log"))
	defer func() {
		_ = logger.Sync()
	}()
	logger = logger.With(zap.String("session_id", core.NewSessionID()))

	cfg, err := core.LoadConfig()
	if err != nil {
		console.Errorf(os.Stdout, "❌ Error: %v\n", err)
		logger.Error("configuration load failed", zap.Error(err))
		return core.ExitCodeError
	}

	// Fail-fast startup checks: credential, reference face, prompt files,
	// pose list, output root.
	result := validation.NewSuite(cfg).Validate()
	if !result.Success {
		logger.Error("startup validation failed",
			zap.Int("passed", result.Passed),
			zap.Int("failed", result.Failed),
		)
		return core.ExitCodeError
	}
	logger.Info("startup validation passed",
		zap.Int("checks_passed", result.Passed),
		zap.Duration("duration", result.Duration),
	)

	faceBytes, faceMIME, err := prompts.LoadReferenceFace(cfg.ReferenceFacePath)
	if err != nil {
		console.Errorf(os.Stdout, "❌ Error: %v\n", err)
		logger.Error("reference face unreadable", zap.Error(err))
		return core.ExitCodeError
	}
	logger.Info("reference face loaded",
		zap.String("path", cfg.ReferenceFacePath),
		zap.String("mime_type", faceMIME),
		zap.Int("bytes", len(faceBytes)),
	)

	files, err := prompts.Discover(cfg.PromptsDir)
	if err != nil {
		console.Errorf(os.Stdout, "❌ Error: %v\n", err)
		logger.Error("prompt discovery failed", zap.Error(err))
		return core.ExitCodeError
	}

	poseList, err := poses.Load(cfg.PosesFile)
	if err != nil {
		console.Errorf(os.Stdout, "❌ Error: %v\n", err)
		logger.Error("pose list load failed", zap.Error(err))
		return core.ExitCodeError
	}

	// Ctrl+C cancels between requests; an in-flight call still runs to its
	// own timeout.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := geminiapi.NewClient(ctx, cfg.GoogleAPIKey, cfg.RequestTimeout)
	if err != nil {
		console.Errorf(os.Stdout, "❌ Error: %v\n", err)
		logger.Error("client initialization failed", zap.Error(err))
		return core.ExitCodeError
	}

	operator := console.New()
	model := operator.SelectModel(core.ModelCatalog())
	logger.Info("model selected", zap.String("model", model.ID))

	d, err := driver.New(client, operator, logger, os.Stdout, driver.Config{
		OutputRoot:     cfg.OutputRoot,
		MasterFilename: cfg.MasterFilename,
		Model:          model.ID,
		FaceBytes:      faceBytes,
		FaceMIME:       faceMIME,
		Poses:          poseList,
		PoseDelay:      cfg.PoseDelay,
	})
	if err != nil {
		logger.Error("driver initialization failed", zap.Error(err))
		return core.ExitCodeError
	}

	if err := d.Run(ctx, files); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println("\nInterrupted. Finished work is on disk.")
			logger.Warn("session interrupted", zap.String("exit", core.ExitCodeName(core.ExitCodeSIGINT)))
			return core.ExitCodeSIGINT
		}
		logger.Error("session failed", zap.Error(err))
		return core.ExitCodeError
	}

	return core.ExitCodeSuccess
}
