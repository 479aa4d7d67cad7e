// Package domain defines the core data models and interfaces shared across the
// calculator. It contains plain types (buffer, inputs, settings, errors) and
// contracts (interfaces) only; no evaluation logic lives here.
package domain
