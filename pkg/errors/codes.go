package errors

// ErrorCode is a string representation of a specific error condition.  Codes
// are stable identifiers; log pipelines and tests match on them, so existing
// values must never be renumbered.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeTimeout            ErrorCode = "COMMON_004"
	ErrCodeValidation         ErrorCode = "COMMON_005"
	ErrCodeSerialization      ErrorCode = "COMMON_006"
	ErrCodeExternalService    ErrorCode = "COMMON_007"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
	ErrCodeCacheError         ErrorCode = "COMMON_009"
	ErrCodeConfig             ErrorCode = "COMMON_010"
)

// Analysis pipeline error codes.
const (
	// ErrCodeStrategyUnavailable marks a strategy whose backing resource
	// (remote service, trained artifact) is absent.  Always recoverable by
	// falling back to the next strategy; never surfaced to the end caller.
	ErrCodeStrategyUnavailable ErrorCode = "ANALYZE_001"

	// ErrCodeRemoteMalformed marks a remote response that failed structural
	// parsing after code-fence stripping.
	ErrCodeRemoteMalformed ErrorCode = "ANALYZE_002"

	// ErrCodeInputTooSmall marks input text below the minimum length; the
	// pipeline short-circuits to the demo analysis instead of classifying.
	ErrCodeInputTooSmall ErrorCode = "ANALYZE_003"

	// ErrCodePipelineFault marks an unexpected fault caught at the
	// orchestrator boundary and converted to the degraded demo analysis.
	ErrCodePipelineFault ErrorCode = "ANALYZE_004"

	// ErrCodeLowConfidence marks a statistical prediction below the
	// acceptance threshold; the candidate is dropped rather than guessed.
	ErrCodeLowConfidence ErrorCode = "ANALYZE_005"
)

// Model and artifact error codes.
const (
	ErrCodeModelNotLoaded   ErrorCode = "MODEL_001"
	ErrCodeArtifactNotFound ErrorCode = "MODEL_002"
	ErrCodeArtifactCorrupt  ErrorCode = "MODEL_003"
	ErrCodeTrainingFailed   ErrorCode = "MODEL_004"
	ErrCodeLabelSetChanged  ErrorCode = "MODEL_005"
	ErrCodeStorageFailure   ErrorCode = "MODEL_006"
)
