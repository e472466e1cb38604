package samplebuf

import "fmt"

func validateLength(length int) error {
	if length < 0 {
		return fmt.Errorf("sample buffer length must be >= 0: %d", length)
	}
	return nil
}
