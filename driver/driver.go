// Package driver runs the per-prompt generation loop: master image, operator
// gate, pose variants. It owns no I/O beyond the output tree; the service and
// the operator are injected interfaces.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Bizzaro10/nano-banana-script/console"
	"github.com/Bizzaro10/nano-banana-script/core"
	"github.com/Bizzaro10/nano-banana-script/geminiapi"
	"github.com/Bizzaro10/nano-banana-script/imageio"
	"github.com/Bizzaro10/nano-banana-script/logging"
	"github.com/Bizzaro10/nano-banana-script/prompts"
)

// masterMIMEType is the conditioning MIME for pose requests: the master image
// is always persisted as PNG, so its bytes are resubmitted as PNG.
const masterMIMEType = "image/png"

// promptPreviewLen bounds the prompt excerpt shown in the per-prompt header.
const promptPreviewLen = 60

// Config holds everything the driver needs for one session. All fields
// except the clock hooks are required.
type Config struct {
	// OutputRoot is the root of the per-prompt output tree
	OutputRoot string

	// MasterFilename names the master image inside a run directory
	MasterFilename string

	// Model is the resolved model identifier for every request
	Model string

	// FaceBytes is the immutable reference face image
	FaceBytes []byte

	// FaceMIME is the sniffed MIME type of FaceBytes
	FaceMIME string

	// Poses is the ordered pose list
	Poses []string

	// PoseDelay is the pause after every pose attempt
	PoseDelay time.Duration

	// Now supplies the clock for run identifiers. Defaults to time.Now.
	Now func() time.Time

	// Sleep implements the inter-pose pause. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

// Driver walks the discovered prompts and produces the photo set.
type Driver struct {
	service  geminiapi.Service
	operator console.Operator
	logger   *logging.Logger
	out      io.Writer
	cfg      Config
}

// New creates a Driver. The out writer receives operator-facing progress;
// pass os.Stdout in production.
func New(service geminiapi.Service, operator console.Operator, logger *logging.Logger, out io.Writer, cfg Config) (*Driver, error) {
	if service == nil {
		return nil, fmt.Errorf("driver: service cannot be nil")
	}
	if operator == nil {
		return nil, fmt.Errorf("driver: operator cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("driver: logger cannot be nil")
	}
	if out == nil {
		out = os.Stdout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	if cfg.MasterFilename == "" {
		cfg.MasterFilename = "00_MASTER_CONCEPT.png"
	}

	return &Driver{
		service:  service,
		operator: operator,
		logger:   logger.Named("driver"),
		out:      out,
		cfg:      cfg,
	}, nil
}

// Run processes every prompt file in order. Per-prompt failures are logged
// and skipped; Run only returns an error when the context is cancelled.
func (d *Driver) Run(ctx context.Context, files []prompts.PromptFile) error {
	fmt.Fprintf(d.out, "🚀 Found %d prompts. Starting interactive session...\n\n", len(files))
	d.logger.Info("session started",
		zap.Int("prompt_count", len(files)),
		zap.String("model", d.cfg.Model),
		zap.Int("pose_count", len(d.cfg.Poses)),
	)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			d.logger.Warn("session cancelled", zap.String("next_prompt", file.Name))
			return err
		}
		d.processPrompt(ctx, file)
	}

	console.Successf(d.out, "✅ Session complete.\n")
	d.logger.Info("session complete")
	return nil
}

// processPrompt runs one prompt end to end. Failures abandon the prompt but
// never the session.
func (d *Driver) processPrompt(ctx context.Context, file prompts.PromptFile) {
	runID := core.NewRunID(d.cfg.Now())
	runDir := filepath.Join(d.cfg.OutputRoot, file.Name, runID.DirName())
	log := d.logger.With(zap.String("prompt", file.Name), zap.String("run_dir", runDir))

	// The run directory marks the processing attempt itself. It is created
	// before the first request so it exists whether or not generation
	// succeeds, and creation is idempotent.
	if err := os.MkdirAll(runDir, 0755); err != nil {
		console.Errorf(d.out, "   ❌ Cannot create output directory: %v\n", err)
		log.Error("output directory creation failed", zap.Error(err))
		return
	}

	promptText, err := file.ReadText()
	if err != nil {
		console.Errorf(d.out, "   ❌ Cannot read prompt file: %v\n", err)
		log.Error("prompt file unreadable", zap.Error(err))
		return
	}

	fmt.Fprintln(d.out, "------------------------------------------------------")
	fmt.Fprintf(d.out, "📂 Processing: %s\n", filepath.Base(file.Path))
	fmt.Fprintf(d.out, "📝 Prompt: %s\n", truncate(promptText, promptPreviewLen))
	fmt.Fprintf(d.out, "💾 Saving to: %s\n", runDir)

	masterBytes := d.generateMaster(ctx, log, runDir, promptText)
	if masterBytes == nil {
		return
	}

	if !d.operator.ConfirmPoses(file.Name) {
		fmt.Fprintln(d.out, "   ⏩ Skipping poses. Moving to next prompt.")
		log.Info("poses declined by operator")
		return
	}

	d.generatePoses(ctx, log, runDir, masterBytes)
	fmt.Fprintf(d.out, "   ✨ All poses finished for %s.\n\n", file.Name)
}

// generateMaster issues the master-image request and persists the result.
// Returns the saved image bytes, or nil if the prompt must be abandoned.
// Poses are only ever generated from bytes returned here.
func (d *Driver) generateMaster(ctx context.Context, log *logging.Logger, runDir, promptText string) []byte {
	fmt.Fprintf(d.out, "   🎨 Generating concept image using %s...\n", d.cfg.Model)

	resp, err := d.service.GenerateImage(ctx, d.cfg.Model, []geminiapi.Part{
		geminiapi.NewImagePart(d.cfg.FaceBytes, d.cfg.FaceMIME),
		geminiapi.NewTextPart(masterInstruction(promptText)),
	})
	if err != nil {
		console.Errorf(d.out, "   ❌ Error generating concept: %v\n", err)
		log.Error("master generation failed", zap.Error(err))
		return nil
	}

	masterPath := filepath.Join(runDir, d.cfg.MasterFilename)
	masterBytes, err := imageio.SaveInlineImage(resp, masterPath)
	if err != nil {
		if errors.Is(err, imageio.ErrNoImage) {
			// Empty-but-successful response: logged apart from request
			// errors, handled the same way (abandon the prompt).
			console.Warnf(d.out, "   ⚠️ Failed to generate concept image. Skipping.\n")
			log.Warn("master response contained no image")
			return nil
		}
		console.Errorf(d.out, "   ❌ Could not save concept image: %v\n", err)
		log.Error("master image save failed", zap.Error(err))
		return nil
	}

	console.Successf(d.out, "   ✅ Saved: %s\n", masterPath)
	d.logSavedImage(log, "master image saved", masterPath, masterBytes)
	fmt.Fprintf(d.out, "\n   👀 Check the image at: %s\n", masterPath)
	return masterBytes
}

// generatePoses issues one request per pose label, conditioned on the master
// image. A failed or empty pose is skipped; the rest are still attempted.
func (d *Driver) generatePoses(ctx context.Context, log *logging.Logger, runDir string, masterBytes []byte) {
	total := len(d.cfg.Poses)
	fmt.Fprintf(d.out, "   📸 Generating %d poses using %s...\n", total, d.cfg.Model)

	for i, pose := range d.cfg.Poses {
		if ctx.Err() != nil {
			log.Warn("pose loop cancelled", zap.Int("next_pose", i+1))
			return
		}

		fmt.Fprintf(d.out, "      [%d/%d] %s...\n", i+1, total, truncate(pose, promptPreviewLen))
		d.generatePose(ctx, log, runDir, masterBytes, i, pose)

		// Fixed pause after every attempt, success or failure, to avoid
		// hammering the service.
		d.cfg.Sleep(d.cfg.PoseDelay)
	}
}

func (d *Driver) generatePose(ctx context.Context, log *logging.Logger, runDir string, masterBytes []byte, index int, pose string) {
	resp, err := d.service.GenerateImage(ctx, d.cfg.Model, []geminiapi.Part{
		geminiapi.NewImagePart(masterBytes, masterMIMEType),
		geminiapi.NewTextPart(poseInstruction(pose)),
	})
	if err != nil {
		console.Errorf(d.out, "      ❌ Pose failed: %v\n", err)
		log.Error("pose generation failed", zap.Int("pose", index+1), zap.Error(err))
		return
	}

	posePath := filepath.Join(runDir, fmt.Sprintf("pose_%d.png", index+1))
	poseBytes, err := imageio.SaveInlineImage(resp, posePath)
	if err != nil {
		if errors.Is(err, imageio.ErrNoImage) {
			console.Warnf(d.out, "      ⚠️ No image returned for this pose. Skipping.\n")
			log.Warn("pose response contained no image", zap.Int("pose", index+1))
			return
		}
		console.Errorf(d.out, "      ❌ Could not save pose image: %v\n", err)
		log.Error("pose image save failed", zap.Int("pose", index+1), zap.Error(err))
		return
	}

	console.Successf(d.out, "      ✅ Saved: %s\n", posePath)
	d.logSavedImage(log, "pose image saved", posePath, poseBytes)
}

// logSavedImage records a persisted image with its decoded dimensions when
// the bytes are probeable.
func (d *Driver) logSavedImage(log *logging.Logger, msg, path string, data []byte) {
	fields := []zap.Field{
		zap.String("path", path),
		zap.Int("bytes", len(data)),
	}
	if w, h, err := imageio.Dimensions(data); err == nil {
		fields = append(fields, zap.Int("width", w), zap.Int("height", h))
	}
	log.Info(msg, fields...)
}

// truncate shortens s for display, appending an ellipsis when cut.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
