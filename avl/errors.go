// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey is returned by Insert when the key is already present.
	ErrDuplicateKey = errors.New("avl: duplicate key")
	// ErrKeyNotFound is returned by Delete when the key is absent.
	ErrKeyNotFound = errors.New("avl: key not found")
)

// InvariantError describes the first structural violation found by Verify.
type InvariantError struct {
	Key    int
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("avl: invariant violated at key %d: %s", e.Key, e.Reason)
}
