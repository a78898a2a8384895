// SPDX-License-Identifier: MIT

// Package config loads the transcat application configuration from YAML and
// validates it.
//
// Every section is optional; missing values keep the defaults returned by
// Default. Validation failures wrap ErrInvalid.
package config
