// Package guard switches the process into test mode when imported for side
// effects by test binaries.
package guard

import (
	"os"
	"sync"
)

var once sync.Once

func init() {
	once.Do(func() {
		if os.Getenv("VETCLINIC_TEST_MODE") == "" {
			_ = os.Setenv("VETCLINIC_TEST_MODE", "1")
		}
	})
}
