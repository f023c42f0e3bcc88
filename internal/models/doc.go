// Package models defines the core domain models for pointhub.
//
// # Models
//
//   - User: a registered account identified by a unique username
//   - Result: one hit/miss classification of a submitted point
//
// # Design Principles
//
//  1. **Immutability**: Results are write-once; Users never change after
//     registration
//  2. **Avoid circular references**: Results carry only the owner's ID string,
//     never a pointer back to the User
//  3. **Storage-agnostic**: models know nothing about SQL or JSON; the storage
//     and server layers own their own mappings
package models
