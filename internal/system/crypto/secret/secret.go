/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package secret generates the random secrets used as authorization codes and access tokens.
package secret

import (
	"crypto/rand"
	"errors"
	"io"
)

// DefaultAlphabet is the alphanumeric alphabet used for codes and access tokens.
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// maxAlphabetSize is the largest alphabet a single random byte can index.
const maxAlphabetSize = 256

var (
	// ErrInvalidLength is returned when a negative length is requested.
	ErrInvalidLength = errors.New("secret length must not be negative")
	// ErrInvalidAlphabet is returned when the alphabet is empty or larger than 256 characters.
	ErrInvalidAlphabet = errors.New("secret alphabet must contain between 1 and 256 characters")
)

// randReader is the entropy source. Tests replace it to exercise failure paths.
var randReader io.Reader = rand.Reader

// Generate returns a string of exactly length characters drawn uniformly from the alphabet.
// Random bytes falling in the 256 mod len(alphabet) overflow region are discarded and
// redrawn so that no character is favoured.
func Generate(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", ErrInvalidLength
	}
	chars := []rune(alphabet)
	if len(chars) == 0 || len(chars) > maxAlphabetSize {
		return "", ErrInvalidAlphabet
	}
	if length == 0 {
		return "", nil
	}

	size := len(chars)
	// Bytes at or above this bound would bias the lower part of the alphabet.
	limit := maxAlphabetSize - (maxAlphabetSize % size)

	result := make([]rune, 0, length)
	buf := make([]byte, length+length/4+1)
	for len(result) < length {
		if _, err := io.ReadFull(randReader, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			result = append(result, chars[int(b)%size])
			if len(result) == length {
				break
			}
		}
	}

	return string(result), nil
}

// GenerateDefault returns a secret of the given length drawn from DefaultAlphabet.
func GenerateDefault(length int) (string, error) {
	return Generate(length, DefaultAlphabet)
}
