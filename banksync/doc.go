// Copyright 2025 Hatem Noureddine
// SPDX-License-Identifier: Apache-2.0

// Package banksync implements the offline-first synchronization and caching
// subsystem of the BKSample banking client.
//
// Reads are always served from the local SQLite cache through channel-based
// watch streams; the network (or the bundled mock dataset) is only consulted
// to refresh the cache. A refresh replaces the whole cache in a single
// transaction, is throttled to one fetch per five-minute window unless
// forced, and records its completion time in the preference store.
package banksync
