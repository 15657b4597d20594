package piston

import "strings"

// Stage-absence is "no such stage", not a zero stage: interpreted
// languages have no compile stage and a rejected program may have no
// run stage. All normalization lives here instead of being null-checked
// at call sites.

const (
	compileOutputHeader = "[Compilation Output]"
	compileErrorHeader  = "[Compilation Error]"
)

// normalizeResult folds the optional compile and run stages into one
// Result. Success means the compile stage produced no stderr and the
// run stage (when present) exited zero. The compile blocks are prefixed
// with headers so the editor can distinguish them from program output.
func normalizeResult(resp executeResponse) Result {
	var stdout, stderr strings.Builder
	success := true

	if resp.Compile != nil {
		if resp.Compile.Stderr != "" {
			stderr.WriteString(compileErrorHeader + "\n" + resp.Compile.Stderr + "\n")
			success = false
		}
		if resp.Compile.Stdout != "" {
			stdout.WriteString(compileOutputHeader + "\n" + resp.Compile.Stdout + "\n")
		}
	}

	if resp.Run != nil {
		stdout.WriteString(resp.Run.Stdout)
		stderr.WriteString(resp.Run.Stderr)
		if resp.Run.Code != 0 {
			success = false
		}

		return Result{
			Success:  success,
			Stdout:   strings.TrimSpace(stdout.String()),
			Stderr:   strings.TrimSpace(stderr.String()),
			ExitCode: resp.Run.Code,
			Signal:   resp.Run.Signal,
		}
	}

	exitCode := 0
	if resp.Compile != nil {
		exitCode = resp.Compile.Code
	}

	return Result{
		Success:  success,
		Stdout:   strings.TrimSpace(stdout.String()),
		Stderr:   strings.TrimSpace(stderr.String()),
		ExitCode: exitCode,
	}
}
