package validation

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Bizzaro10/nano-banana-script/console"
	"github.com/Bizzaro10/nano-banana-script/core"
	"github.com/Bizzaro10/nano-banana-script/poses"
	"github.com/Bizzaro10/nano-banana-script/prompts"
)

// StepStatus represents the status of a validation step.
type StepStatus int

const (
	StepPassed StepStatus = iota
	StepFailed
)

// Step is a single validation step with its outcome.
type Step struct {
	Name    string
	Status  StepStatus
	Message string
	Error   error
}

// Result is the outcome of running the whole suite.
type Result struct {
	Steps    []Step
	Passed   int
	Failed   int
	Duration time.Duration
	Success  bool
}

// Suite runs the fatal startup conditions in order: credential present,
// reference face readable, prompts discoverable, pose list loadable, output
// root writable. Every step runs even after a failure so the operator sees
// the full picture in one pass.
type Suite struct {
	cfg          *core.Config
	output       io.Writer
	showProgress bool
}

// NewSuite creates a Suite over a loaded configuration.
func NewSuite(cfg *core.Config) *Suite {
	return &Suite{
		cfg:          cfg,
		output:       os.Stdout,
		showProgress: true,
	}
}

// WithOutput sets the writer for progress messages.
func (s *Suite) WithOutput(w io.Writer) *Suite {
	s.output = w
	return s
}

// WithShowProgress enables or disables progress output.
func (s *Suite) WithShowProgress(show bool) *Suite {
	s.showProgress = show
	return s
}

// Validate runs all startup checks and renders progress.
func (s *Suite) Validate() Result {
	start := time.Now()

	if s.showProgress {
		console.Headerf(s.output, "--- Startup Validation ---\n")
	}

	checks := []struct {
		name string
		fn   func() (string, error)
	}{
		{"API Credential", s.checkCredential},
		{"Reference Face", s.checkReferenceFace},
		{"Prompt Files", s.checkPrompts},
		{"Pose List", s.checkPoses},
		{"Output Root", s.checkOutputRoot},
	}

	var result Result
	for _, check := range checks {
		message, err := check.fn()
		step := Step{Name: check.name, Message: message, Error: err}
		if err == nil {
			step.Status = StepPassed
			result.Passed++
		} else {
			step.Status = StepFailed
			result.Failed++
		}
		result.Steps = append(result.Steps, step)

		if s.showProgress {
			s.printStep(step)
		}
	}

	result.Duration = time.Since(start)
	result.Success = result.Failed == 0

	if s.showProgress {
		s.printSummary(result)
	}
	return result
}

func (s *Suite) checkCredential() (string, error) {
	if s.cfg.GoogleAPIKey == "" {
		return "GOOGLE_API_KEY missing. Check your environment or .env file.",
			fmt.Errorf("GOOGLE_API_KEY is not set")
	}
	return "API key present", nil
}

func (s *Suite) checkReferenceFace() (string, error) {
	if err := CheckFileExists(s.cfg.ReferenceFacePath); err != nil {
		return fmt.Sprintf("Face reference not found at %s", s.cfg.ReferenceFacePath), err
	}
	return fmt.Sprintf("Reference face found at %s", s.cfg.ReferenceFacePath), nil
}

func (s *Suite) checkPrompts() (string, error) {
	files, err := prompts.Discover(s.cfg.PromptsDir)
	if err != nil {
		return fmt.Sprintf("No .txt prompt files in %s", s.cfg.PromptsDir), err
	}
	return fmt.Sprintf("%d prompt file(s) in %s", len(files), s.cfg.PromptsDir), nil
}

func (s *Suite) checkPoses() (string, error) {
	list, err := poses.Load(s.cfg.PosesFile)
	if err != nil {
		return fmt.Sprintf("Pose file %s is unusable", s.cfg.PosesFile), err
	}
	if s.cfg.PosesFile == "" {
		return fmt.Sprintf("Using built-in pose list (%d poses)", len(list)), nil
	}
	return fmt.Sprintf("Loaded %d poses from %s", len(list), s.cfg.PosesFile), nil
}

func (s *Suite) checkOutputRoot() (string, error) {
	if err := os.MkdirAll(s.cfg.OutputRoot, 0755); err != nil {
		return fmt.Sprintf("Cannot create output root %s", s.cfg.OutputRoot), err
	}
	return fmt.Sprintf("Output root ready at %s", s.cfg.OutputRoot), nil
}

func (s *Suite) printStep(step Step) {
	if step.Status == StepPassed {
		console.Successf(s.output, "  ✓ %-16s %s\n", step.Name, step.Message)
		return
	}
	console.Errorf(s.output, "  ✗ %-16s %s\n", step.Name, step.Message)
}

func (s *Suite) printSummary(result Result) {
	if result.Success {
		console.Successf(s.output, "All %d checks passed (%v)\n\n", result.Passed, result.Duration.Round(time.Millisecond))
		return
	}
	console.Errorf(s.output, "%d of %d checks failed\n\n", result.Failed, result.Passed+result.Failed)
}
