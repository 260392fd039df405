// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package httpserver

import "errors"

var (
	errNoBindAddresses = errors.New("no bind addresses are configured")
)
