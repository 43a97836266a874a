package constants

import "time"

var ModelDefaults = struct {
	GeminiText  string
	GeminiImage string
	OpenAIText  string
	OpenAIImage string
}{
	GeminiText:  "gemini-2.5-flash",
	GeminiImage: "imagen-4.0-generate-001",
	OpenAIText:  "gpt-4.1-mini",
	OpenAIImage: "gpt-image-1",
}

// LogoImageConfig is the fixed configuration sent with every logo request.
var LogoImageConfig = struct {
	Count        int
	OutputFormat string
	AspectRatio  string
}{
	Count:        1,
	OutputFormat: "png",
	AspectRatio:  "1:1",
}

var ServerConfig = struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	MaxBodyBytes      int64
}{
	Addr:              ":8080",
	ReadHeaderTimeout: 5 * time.Second,
	ReadTimeout:       15 * time.Second,
	IdleTimeout:       60 * time.Second,
	ShutdownTimeout:   10 * time.Second,
	MaxBodyBytes:      64 << 10,
}

var WebSocketConfig = struct {
	ReadLimit    int64
	PongWait     time.Duration
	PingInterval time.Duration
	WriteWait    time.Duration
}{
	ReadLimit:    64 << 10,
	PongWait:     60 * time.Second,
	PingInterval: 50 * time.Second, // must be shorter than PongWait
	WriteWait:    10 * time.Second,
}

var CircuitBreakerConfig = struct {
	FailureThreshold int
	ResetTimeout     time.Duration
}{
	FailureThreshold: 3,                // 3회 연속 실패 시 Circuit OPEN
	ResetTimeout:     30 * time.Second, // 기본 재시도 대기 시간 (30초)
}

var LogPreview = struct {
	IdeaRunes int
	TextRunes int
}{
	IdeaRunes: 80,
	TextRunes: 200,
}

// UserMessages holds the copy shown by the web front end.
var UserMessages = struct {
	GenerationFailed string
	EmptyIdea        string
}{
	GenerationFailed: "Ocorreu um erro ao gerar o conteúdo. Por favor, tente novamente.",
	EmptyIdea:        "Conte-nos sua ideia de negócio antes de gerar o pitch.",
}
