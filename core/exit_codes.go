package core

// Exit codes for the application.
// Signal-based exits follow the Unix 128 + signal number convention.
const (
	// ExitCodeSuccess indicates a clean run (exit code 0).
	// Note: a run where some prompts failed but the loop completed still
	// exits 0; partial failure is reported only through the logs.
	ExitCodeSuccess = 0

	// ExitCodeError indicates a fatal startup or configuration error (exit code 1)
	ExitCodeError = 1

	// ExitCodeSIGINT indicates termination due to SIGINT (Ctrl+C): 128 + 2
	ExitCodeSIGINT = 130

	// ExitCodeSIGTERM indicates termination due to SIGTERM: 128 + 15
	ExitCodeSIGTERM = 143
)

// ExitCodeName returns a human-readable name for an exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitCodeSuccess:
		return "success"
	case ExitCodeError:
		return "error"
	case ExitCodeSIGINT:
		return "interrupted (SIGINT)"
	case ExitCodeSIGTERM:
		return "terminated (SIGTERM)"
	default:
		return "unknown"
	}
}
