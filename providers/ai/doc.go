// Package ai defines the provider-neutral chat-completion model: request and
// response structures, message roles, and the Provider interface every
// concrete endpoint implementation must satisfy.
//
// Concrete providers live in subpackages (e.g. deepseek) and translate these
// generic structures to and from their wire format.
package ai
