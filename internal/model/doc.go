// Package model defines the data structures used throughout ghexplorer.
//
// # Project
//
// The [Project] struct is one saved repository. Its JSON form matches the
// subset of the GitHub repository payload the tool keeps, so the stored list
// reads like the API response:
//
//	{"full_name": "facebook/react", "description": "...",
//	 "owner": {"login": "facebook", "avatar_url": "https://..."}}
//
// FullName is the identifier; a collection never holds two projects whose
// full names match case-insensitively (see [Project.SameProject]).
//
// # ProjectDetail
//
// [ProjectDetail] adds the counters displayed by the detail view.
//
// # Policies
//
// [DuplicatePolicy] and [PersistMode] are parsed from configuration strings
// and fall back to their zero values on unknown input.
package model
