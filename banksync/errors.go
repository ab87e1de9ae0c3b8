// Copyright 2025 Hatem Noureddine
// SPDX-License-Identifier: Apache-2.0

package banksync

import "fmt"

// FetchError reports a transport-level failure while contacting a remote data
// source: the request could not be sent, or the server answered with a
// non-200 status. The cache is never touched when a FetchError surfaces.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DecodeError reports a malformed response body or mock resource. Source
// names where the bytes came from (URL or resource path).
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
