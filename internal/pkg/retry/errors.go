package retry

import "fmt"

// RetryError содержит информацию об ошибке retry
type RetryError struct {
	// Attempt номер попытки, на которой произошла ошибка
	Attempt int
	// OriginalError исходная ошибка
	OriginalError error
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("retry attempt %d failed: %v", e.Attempt, e.OriginalError)
}

// Unwrap возвращает оригинальную ошибку
func (e *RetryError) Unwrap() error {
	return e.OriginalError
}
