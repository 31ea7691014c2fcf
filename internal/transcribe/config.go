package transcribe

// Config captures runtime settings for WhisperX invocations.
type Config struct {
	// Model is the WhisperX model to use (e.g., "large-v3").
	Model string
	// Language is the ISO 639-1 target language.
	Language string
	// CUDAEnabled enables GPU transcription. Decided once at service
	// construction and held for the service's lifetime.
	CUDAEnabled bool
}

// WhisperX configuration constants. Settings are pinned so repeated runs over
// the same input produce the same segments.
const (
	DefaultModel    = "large-v3"
	DefaultLanguage = "en"
	CUDAIndexURL    = "https://download.pytorch.org/whl/cu128"
	PypiIndexURL    = "https://pypi.org/simple"
	BatchSize       = "4"
	BeamSize        = "5"
	Temperature     = "0.0"
	OutputFormat    = "json"
	CPUDevice       = "cpu"
	CUDADevice      = "cuda"
	CPUComputeType  = "float32"
	CUDAComputeType = "float16"
)

// Command names for external tools.
const (
	UVXCommand       = "uvx"
	NvidiaSMICommand = "nvidia-smi"
)
