package prompt

// Option предназначен для настройки текстов диалога в конструкторе.
type Option func(*Reader)

// WithPrompt задаёт приглашение, печатаемое перед каждым чтением строки.
func WithPrompt(prompt string) Option {
	return func(r *Reader) { r.prompt = prompt }
}

// WithErrorMessage задаёт сообщение, печатаемое при неразборчивом вводе.
func WithErrorMessage(message string) Option {
	return func(r *Reader) { r.errorMessage = message }
}
