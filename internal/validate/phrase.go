package validate

import (
	"fmt"
	"strings"
)

// Phrase checks a duration phrase before it reaches the parser.
//
// Validation rules:
//   - Must contain at least one non-space character
//   - Max length enforced if maxLen > 0 (0 means no limit)
func Phrase(s string, maxLen int) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyPhrase
	}
	if maxLen > 0 && len(s) > maxLen {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrPhraseTooLong, len(s), maxLen)
	}
	return nil
}
