//go:build tinygo

package sonar

import (
	"sync"
)

type Mutex struct {
	sync.Mutex
}
