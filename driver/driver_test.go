package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/Bizzaro10/nano-banana-script/core"
	"github.com/Bizzaro10/nano-banana-script/geminiapi"
	"github.com/Bizzaro10/nano-banana-script/logging"
	"github.com/Bizzaro10/nano-banana-script/prompts"
)

// fakeCall records one GenerateImage invocation.
type fakeCall struct {
	model string
	parts []geminiapi.Part
}

// fakeResult scripts one GenerateImage outcome.
type fakeResult struct {
	resp *geminiapi.Response
	err  error
}

// fakeService implements geminiapi.Service with a scripted response queue.
// When the queue is exhausted it returns a generic successful image.
type fakeService struct {
	script []fakeResult
	calls  []fakeCall
}

func (f *fakeService) GenerateImage(_ context.Context, model string, parts []geminiapi.Part) (*geminiapi.Response, error) {
	f.calls = append(f.calls, fakeCall{model: model, parts: parts})

	if len(f.script) == 0 {
		return imageResponse([]byte("generated-image")), nil
	}
	next := f.script[0]
	f.script = f.script[1:]
	return next.resp, next.err
}

// scriptedOperator implements console.Operator with canned answers.
type scriptedOperator struct {
	answers  []bool
	asked    int
	declined bool
}

func (o *scriptedOperator) SelectModel(catalog []core.ModelChoice) core.ModelChoice {
	return catalog[0]
}

func (o *scriptedOperator) ConfirmPoses(string) bool {
	o.asked++
	if len(o.answers) == 0 {
		return false
	}
	answer := o.answers[0]
	o.answers = o.answers[1:]
	return answer
}

func imageResponse(data []byte) *geminiapi.Response {
	return &geminiapi.Response{
		Candidates: []geminiapi.Candidate{
			{Parts: []geminiapi.Part{geminiapi.NewImagePart(data, "image/png")}},
		},
	}
}

func textOnlyResponse() *geminiapi.Response {
	return &geminiapi.Response{
		Candidates: []geminiapi.Candidate{
			{Parts: []geminiapi.Part{geminiapi.NewTextPart("request was filtered")}},
		},
	}
}

func nopLogger() *logging.Logger {
	return logging.NewLoggerWithCore(zapcore.NewNopCore())
}

// testSetup bundles a driver with everything needed to inspect a run.
type testSetup struct {
	driver  *Driver
	service *fakeService
	op      *scriptedOperator
	root    string
	runDir  func(prompt string) string
	sleeps  *int
}

var testFace = []byte{0xFF, 0xD8, 0xFF, 0xAA}

func newTestSetup(t *testing.T, service *fakeService, op *scriptedOperator, poses []string) *testSetup {
	t.Helper()

	root := t.TempDir()
	fixedTime := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	sleeps := 0

	cfg := Config{
		OutputRoot:     root,
		MasterFilename: "00_MASTER_CONCEPT.png",
		Model:          "gemini-2.5-flash-image",
		FaceBytes:      testFace,
		FaceMIME:       "image/jpeg",
		Poses:          poses,
		PoseDelay:      2 * time.Second,
		Now:            func() time.Time { return fixedTime },
		Sleep:          func(time.Duration) { sleeps++ },
	}

	d, err := New(service, op, nopLogger(), io.Discard, cfg)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	return &testSetup{
		driver:  d,
		service: service,
		op:      op,
		root:    root,
		runDir: func(prompt string) string {
			return filepath.Join(root, prompt, core.NewRunID(fixedTime).DirName())
		},
		sleeps: &sleeps,
	}
}

func writePrompt(t *testing.T, dir, name, text string) prompts.PromptFile {
	t.Helper()
	path := filepath.Join(dir, name+".txt")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return prompts.PromptFile{Name: name, Path: path}
}

func fileExists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("stat %s: %v", path, err)
	}
	return err == nil
}

func TestDriver_FullSuccess(t *testing.T) {
	masterImage := []byte("master-image-bytes")
	poseOne := []byte("pose-one-bytes")
	poseTwo := []byte("pose-two-bytes")

	service := &fakeService{script: []fakeResult{
		{resp: imageResponse(masterImage)},
		{resp: imageResponse(poseOne)},
		{resp: imageResponse(poseTwo)},
	}}
	op := &scriptedOperator{answers: []bool{true}}
	setup := newTestSetup(t, service, op, []string{"arms crossed", "walking"})

	promptDir := t.TempDir()
	file := writePrompt(t, promptDir, "winter", "A red coat in snow.")

	if err := setup.driver.Run(context.Background(), []prompts.PromptFile{file}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	runDir := setup.runDir("winter")
	masterPath := filepath.Join(runDir, "00_MASTER_CONCEPT.png")
	saved, err := os.ReadFile(masterPath)
	if err != nil {
		t.Fatalf("master image not saved: %v", err)
	}
	if !bytes.Equal(saved, masterImage) {
		t.Error("master file contents do not match service response")
	}

	for i, want := range [][]byte{poseOne, poseTwo} {
		posePath := filepath.Join(runDir, fmt.Sprintf("pose_%d.png", i+1))
		data, err := os.ReadFile(posePath)
		if err != nil {
			t.Fatalf("pose_%d not saved: %v", i+1, err)
		}
		if !bytes.Equal(data, want) {
			t.Errorf("pose_%d contents do not match service response", i+1)
		}
	}

	if len(service.calls) != 3 {
		t.Fatalf("service received %d calls, want 3 (1 master + 2 poses)", len(service.calls))
	}

	// Master request carries the reference face; pose requests carry the
	// master image bytes, never the face.
	master := service.calls[0]
	if master.parts[0].InlineData == nil || !bytes.Equal(master.parts[0].InlineData.Data, testFace) {
		t.Error("master request does not attach the reference face")
	}
	if master.parts[0].InlineData.MIMEType != "image/jpeg" {
		t.Errorf("face MIME = %q, want image/jpeg", master.parts[0].InlineData.MIMEType)
	}

	for i, call := range service.calls[1:] {
		if call.parts[0].InlineData == nil || !bytes.Equal(call.parts[0].InlineData.Data, masterImage) {
			t.Errorf("pose call %d is not conditioned on the master image", i+1)
		}
		if call.parts[0].InlineData.MIMEType != "image/png" {
			t.Errorf("pose call %d conditioning MIME = %q, want image/png", i+1, call.parts[0].InlineData.MIMEType)
		}
	}

	if *setup.sleeps != 2 {
		t.Errorf("sleep called %d times, want once per pose attempt (2)", *setup.sleeps)
	}
}

func TestDriver_MasterErrorAbandonsPromptAndContinues(t *testing.T) {
	service := &fakeService{script: []fakeResult{
		{err: errors.New("service exploded")}, // spring's master
		{resp: imageResponse([]byte("summer-master"))}, // summer's master
	}}
	op := &scriptedOperator{answers: []bool{false}}
	setup := newTestSetup(t, service, op, []string{"arms crossed"})

	promptDir := t.TempDir()
	spring := writePrompt(t, promptDir, "spring", "Floral dress.")
	summer := writePrompt(t, promptDir, "summer", "Linen suit.")

	if err := setup.driver.Run(context.Background(), []prompts.PromptFile{spring, summer}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	springDir := setup.runDir("spring")
	if !fileExists(t, springDir) {
		t.Error("run directory for failed prompt was not created")
	}
	if fileExists(t, filepath.Join(springDir, "00_MASTER_CONCEPT.png")) {
		t.Error("master file written for failed prompt")
	}
	if fileExists(t, filepath.Join(springDir, "pose_1.png")) {
		t.Error("pose file written for failed prompt")
	}

	if !fileExists(t, filepath.Join(setup.runDir("summer"), "00_MASTER_CONCEPT.png")) {
		t.Error("second prompt was not processed after first prompt failed")
	}

	// One failed master, one successful master, no poses.
	if len(service.calls) != 2 {
		t.Errorf("service received %d calls, want 2", len(service.calls))
	}
}

func TestDriver_EmptyMasterResponseSkipsOperatorGate(t *testing.T) {
	service := &fakeService{script: []fakeResult{
		{resp: textOnlyResponse()},
	}}
	op := &scriptedOperator{answers: []bool{true}}
	setup := newTestSetup(t, service, op, []string{"arms crossed"})

	file := writePrompt(t, t.TempDir(), "autumn", "Wool coat.")
	if err := setup.driver.Run(context.Background(), []prompts.PromptFile{file}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if fileExists(t, filepath.Join(setup.runDir("autumn"), "00_MASTER_CONCEPT.png")) {
		t.Error("master file written despite empty response")
	}
	if op.asked != 0 {
		t.Error("operator was asked about poses without a saved master image")
	}
	if len(service.calls) != 1 {
		t.Errorf("service received %d calls, want 1 (no pose requests)", len(service.calls))
	}
}

func TestDriver_OperatorDeclineSkipsPoses(t *testing.T) {
	service := &fakeService{script: []fakeResult{
		{resp: imageResponse([]byte("master"))},
	}}
	op := &scriptedOperator{answers: []bool{false}}
	setup := newTestSetup(t, service, op, []string{"arms crossed", "walking"})

	file := writePrompt(t, t.TempDir(), "winter", "A red coat.")
	if err := setup.driver.Run(context.Background(), []prompts.PromptFile{file}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	runDir := setup.runDir("winter")
	if !fileExists(t, filepath.Join(runDir, "00_MASTER_CONCEPT.png")) {
		t.Error("master file missing")
	}
	if fileExists(t, filepath.Join(runDir, "pose_1.png")) {
		t.Error("pose generated although operator declined")
	}
	if len(service.calls) != 1 {
		t.Errorf("service received %d calls, want 1", len(service.calls))
	}
	if op.asked != 1 {
		t.Errorf("operator asked %d times, want 1", op.asked)
	}
}

func TestDriver_PoseFailureDoesNotAbortRemainingPoses(t *testing.T) {
	service := &fakeService{script: []fakeResult{
		{resp: imageResponse([]byte("master"))},
		{resp: imageResponse([]byte("pose-1"))},
		{err: errors.New("pose request failed")},
		{resp: imageResponse([]byte("pose-3"))},
	}}
	op := &scriptedOperator{answers: []bool{true}}
	setup := newTestSetup(t, service, op, []string{"a", "b", "c"})

	file := writePrompt(t, t.TempDir(), "winter", "A red coat.")
	if err := setup.driver.Run(context.Background(), []prompts.PromptFile{file}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	runDir := setup.runDir("winter")
	if !fileExists(t, filepath.Join(runDir, "pose_1.png")) {
		t.Error("pose_1 missing")
	}
	if fileExists(t, filepath.Join(runDir, "pose_2.png")) {
		t.Error("pose_2 written despite request failure")
	}
	if !fileExists(t, filepath.Join(runDir, "pose_3.png")) {
		t.Error("pose_3 missing: a failed pose must not abort the rest")
	}

	// The pause applies to failed attempts too.
	if *setup.sleeps != 3 {
		t.Errorf("sleep called %d times, want 3", *setup.sleeps)
	}
}

func TestDriver_EmptyPoseResponseSkipsThatPoseOnly(t *testing.T) {
	service := &fakeService{script: []fakeResult{
		{resp: imageResponse([]byte("master"))},
		{resp: textOnlyResponse()},
		{resp: imageResponse([]byte("pose-2"))},
	}}
	op := &scriptedOperator{answers: []bool{true}}
	setup := newTestSetup(t, service, op, []string{"a", "b"})

	file := writePrompt(t, t.TempDir(), "winter", "A red coat.")
	if err := setup.driver.Run(context.Background(), []prompts.PromptFile{file}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	runDir := setup.runDir("winter")
	if fileExists(t, filepath.Join(runDir, "pose_1.png")) {
		t.Error("pose_1 written despite empty response")
	}
	if !fileExists(t, filepath.Join(runDir, "pose_2.png")) {
		t.Error("pose_2 missing")
	}
}

func TestDriver_CancelledContextStopsBeforeNextPrompt(t *testing.T) {
	service := &fakeService{}
	op := &scriptedOperator{}
	setup := newTestSetup(t, service, op, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	file := writePrompt(t, t.TempDir(), "winter", "A red coat.")
	err := setup.driver.Run(ctx, []prompts.PromptFile{file})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() err = %v, want context.Canceled", err)
	}
	if len(service.calls) != 0 {
		t.Errorf("service received %d calls after cancellation, want 0", len(service.calls))
	}
}

func TestNew_Validation(t *testing.T) {
	op := &scriptedOperator{}
	service := &fakeService{}
	logger := nopLogger()

	if _, err := New(nil, op, logger, io.Discard, Config{}); err == nil {
		t.Error("New(nil service) returned nil error")
	}
	if _, err := New(service, nil, logger, io.Discard, Config{}); err == nil {
		t.Error("New(nil operator) returned nil error")
	}
	if _, err := New(service, op, nil, io.Discard, Config{}); err == nil {
		t.Error("New(nil logger) returned nil error")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "short string unchanged", input: "red coat", maxLen: 60, want: "red coat"},
		{name: "exact length unchanged", input: "abcde", maxLen: 5, want: "abcde"},
		{name: "long string cut with ellipsis", input: "abcdefgh", maxLen: 5, want: "abcde..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}
