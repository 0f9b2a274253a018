// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved,
// remediation hints and the catalog entry that explains the failure. Issue is a catalog of Markdown documents, one per
// validation rule or failure mode, rendered with glamour by `csvcheck explain`.
package issue
