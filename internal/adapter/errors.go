// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jimin Oh

package adapter

import "errors"

var (
	// ErrTokenExchangeFailed is returned when the tokeninfo endpoint cannot
	// be reached or rejects the supplied identity token. Callers cannot
	// distinguish a network failure from an invalid token through this
	// error; both map to the same upstream-failure response.
	ErrTokenExchangeFailed = errors.New("identity token exchange failed")
)
