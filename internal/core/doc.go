// Package core provides the business logic layer for ghexplorer.
//
// This package contains the saved repository list and the add flow,
// separated from UI concerns. Functions return errors instead of printing.
//
// # Add Flow
//
// One submission goes through [Collection.Add]:
//
//  1. Validate - blank input fails with [ErrEmptyQuery], no I/O
//  2. Fetch - the [Lookuper] resolves the full name; failure is [ErrLookupFailed]
//  3. Merge - [Collection.AddByFullName] returns a new slice, honoring the
//     duplicate policy ([ErrAlreadyAdded] under reject)
//  4. Persist - the whole list is written under [StorageKey];
//     failure is [ErrPersistFailed] unless the persist mode is "log"
//
// On any failure the list is left as it was. [QueryState.Apply] turns the
// outcome into what the input field and error slot show.
//
// Add holds the collection lock for the whole submission, so concurrent
// submissions queue up instead of overwriting each other.
package core
