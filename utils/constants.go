// File: utils/constants.go
package utils

import "time"

// LockPrefix is the prefix used for Redis resource lock keys.
const LockPrefix = "lock:resource:"

// LockRetryInterval is the pause between attempts to take a held lock.
const LockRetryInterval = 50 * time.Millisecond

// DefaultLockTTL applies when RESOURCE_LOCK_TTL is not set.
const DefaultLockTTL = 10 * time.Second

// LockWaitTimeout bounds how long a command waits for a held resource lock.
const LockWaitTimeout = 5 * time.Second
