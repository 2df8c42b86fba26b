package skita

import (
	"sync/atomic"

	"github.com/skita-dev/skita/log"
)

type atomicBool int32

func (b *atomicBool) isSet() bool { return atomic.LoadInt32((*int32)(b)) != 0 }
func (b *atomicBool) setTrue()    { atomic.StoreInt32((*int32)(b), 1) }
func (b *atomicBool) setFalse()   { atomic.StoreInt32((*int32)(b), 0) }

// -----------------------------------------------------------------------------

var devMode atomicBool

// InDevMode returns the development mode flag status.
func InDevMode() bool {
	return devMode.isSet()
}

// SetDevMode enables the local development mode in this package and returns a
// function to revert the configuration.
//
// Calling this method multiple times once the flag is enabled produces no effect.
func SetDevMode() (revert func()) {
	// Prevent multiple calls to indirectly disable the flag
	if devMode.isSet() {
		return func() {}
	}

	devMode.setTrue()
	log.Level(log.DebugLevel).Message("Skita: Development mode enabled")

	return func() {
		devMode.setFalse()
		log.Level(log.DebugLevel).Message("Skita: Development mode disabled")
	}
}

// -----------------------------------------------------------------------------

var strictVersionMode atomicBool

// InStrictVersionMode returns the strict container version acceptance flag
// status.
func InStrictVersionMode() bool {
	return strictVersionMode.isSet()
}

// SetStrictVersionMode makes the decrypt pipeline refuse legacy version
// 0x0001 containers that carry no embedded plaintext hash, since those
// cannot be integrity-verified end to end. The format requires accepting
// them, so this stays disabled unless a caller opts in. Returns a function
// to revert the configuration.
//
// Calling this method multiple times once the flag is enabled produces no effect.
func SetStrictVersionMode() (revert func()) {
	// Prevent multiple calls to indirectly disable the flag
	if strictVersionMode.isSet() {
		return func() {}
	}

	strictVersionMode.setTrue()
	log.Level(log.DebugLevel).Message("Skita: Strict container version mode enabled")

	return func() {
		strictVersionMode.setFalse()
		log.Level(log.DebugLevel).Message("Skita: Strict container version mode disabled")
	}
}
